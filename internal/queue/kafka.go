package queue

import (
	"context"
	"encoding/json"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/traininglab/exlink/internal/model"
)

var _ LinkQueue = (*KafkaLinkQueue)(nil)

type KafkaLinkQueue struct {
	producer *kafka.Producer
}

func NewKafkaLinkQueue(brokers string) (*KafkaLinkQueue, error) {
	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": brokers,
	})
	if err != nil {
		return nil, err
	}

	return &KafkaLinkQueue{producer: producer}, nil
}

func (q *KafkaLinkQueue) PublishCreated(ctx context.Context, link *model.ExerciseLink) error {
	return q.publish(EventLinkCreated, link)
}

func (q *KafkaLinkQueue) PublishDeleted(ctx context.Context, link *model.ExerciseLink) error {
	return q.publish(EventLinkDeleted, link)
}

func (q *KafkaLinkQueue) publish(event string, link *model.ExerciseLink) error {
	payload, err := json.Marshal(&LinkEvent{
		Event:            event,
		LinkID:           link.ID,
		SourceExerciseID: link.SourceExerciseID,
		TargetExerciseID: link.TargetExerciseID,
		LinkType:         link.LinkType,
	})
	if err != nil {
		return err
	}

	return q.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &LinkEventTopic, Partition: kafka.PartitionAny},
		Key:            []byte(link.SourceExerciseID),
		Value:          payload,
	}, nil)
}

func (q *KafkaLinkQueue) Close() {
	q.producer.Close()
}
