package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/models"
)

// ReportEvent is message published for every finished report.
type ReportEvent struct {
	ReportID     int64      `json:"reportId"`
	FeedSourceID int64      `json:"feedSourceId"`
	Status       string     `json:"status"`
	StartedAt    time.Time  `json:"startedAt"`
	FinishedAt   *time.Time `json:"finishedAt,omitempty"`

	TotalProducts       int32 `json:"totalProducts"`
	ProductsAdded       int32 `json:"productsAdded"`
	ProductsUpdated     int32 `json:"productsUpdated"`
	ProductsFailed      int32 `json:"productsFailed"`
	ProductsUnpublished int32 `json:"productsUnpublished"`
	ProductsArchived    int32 `json:"productsArchived"`

	CategoriesCreated      int32 `json:"categoriesCreated"`
	AttributesCreated      int32 `json:"attributesCreated"`
	AttributeValuesCreated int32 `json:"attributeValuesCreated"`

	DownloadError *string `json:"downloadError,omitempty"`
	ParsingError  *string `json:"parsingError,omitempty"`
}

// NewSyncProducer returns sarama.SyncProducer waiting for all in-sync replicas.
func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("can't create kafka producer: %w", err)
	}

	return producer, nil
}

// ReportPublisher publishes finished reports to Kafka topic, keyed by feed source id.
type ReportPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewReportPublisher returns new ReportPublisher.
func NewReportPublisher(producer sarama.SyncProducer, topic string) *ReportPublisher {
	return &ReportPublisher{
		producer: producer,
		topic:    topic,
	}
}

// PublishReport publishes report event.
func (p *ReportPublisher) PublishReport(_ context.Context, report *models.Report) error {
	body, err := json.Marshal(toReportEvent(report))
	if err != nil {
		return fmt.Errorf("can't marshal report event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(report.FeedSourceID, 10)),
		Value: sarama.ByteEncoder(body),
	}

	if _, _, err = p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("can't publish report %d: %w", report.ID, err)
	}

	return nil
}

func toReportEvent(report *models.Report) ReportEvent {
	return ReportEvent{
		ReportID:               report.ID,
		FeedSourceID:           report.FeedSourceID,
		Status:                 string(report.Status),
		StartedAt:              report.StartedAt,
		FinishedAt:             report.FinishedAt,
		TotalProducts:          report.TotalProducts,
		ProductsAdded:          report.ProductsAdded,
		ProductsUpdated:        report.ProductsUpdated,
		ProductsFailed:         report.ProductsFailed,
		ProductsUnpublished:    report.ProductsUnpublished,
		ProductsArchived:       report.ProductsArchived,
		CategoriesCreated:      report.CategoriesCreated,
		AttributesCreated:      report.AttributesCreated,
		AttributeValuesCreated: report.AttributeValuesCreated,
		DownloadError:          report.DownloadError,
		ParsingError:           report.ParsingError,
	}
}
