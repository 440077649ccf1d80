//go:build integration

package events_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"contacts/internal/contacts/events"
	"contacts/internal/contacts/models"
	"contacts/internal/platform/kafka/producer"
	id "contacts/pkg/domain"
	"contacts/pkg/testutil/containers"
)

type KafkaPublisherSuite struct {
	suite.Suite
	kafka    *containers.KafkaContainer
	producer *producer.Producer
}

func TestKafkaPublisherSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaPublisherSuite))
}

func (s *KafkaPublisherSuite) SetupSuite() {
	s.kafka = containers.GetManager().GetKafka(s.T())

	cfg := producer.DefaultConfig(s.kafka.Brokers)
	cfg.DeliveryTimeout = 10 * time.Second
	prod, err := producer.New(cfg, nil)
	s.Require().NoError(err)
	s.producer = prod
}

func (s *KafkaPublisherSuite) TearDownSuite() {
	if s.producer != nil {
		_ = s.producer.Close()
	}
}

func (s *KafkaPublisherSuite) TestProducerHealthy() {
	s.NoError(s.producer.Health(context.Background()))
}

func (s *KafkaPublisherSuite) TestPublishedEventIsConsumable() {
	ctx := context.Background()
	topic := "contacts-person-events-test"
	s.Require().NoError(s.kafka.CreateTopic(ctx, topic, 1, 1))

	personID := id.NewPersonID()
	pub := events.NewKafkaPublisher(s.producer, topic)
	event := models.NewPersonEvent(models.PersonAdded, personID, time.Now())
	s.Require().NoError(pub.Publish(ctx, event))

	consumer, err := s.kafka.NewConsumer(ctx, "contacts-events-test", topic)
	s.Require().NoError(err)
	defer consumer.Close()

	record := s.kafka.WaitForMessage(ctx, consumer, 10*time.Second, func(r *kgo.Record) bool {
		return string(r.Key) == personID.String()
	})
	s.Require().NotNil(record, "event should be consumable")

	var got models.PersonEvent
	s.Require().NoError(json.Unmarshal(record.Value, &got))
	s.Equal(models.PersonAdded, got.Type)
	s.Equal(personID.String(), got.PersonID)

	headers := make(map[string]string)
	for _, h := range record.Headers {
		headers[h.Key] = string(h.Value)
	}
	s.Equal("person", headers["aggregate_type"])
	s.Equal("person.added", headers["event_type"])
}
