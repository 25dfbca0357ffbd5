package simulator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/stovetop-games/brigade/internal/cloudwriter"
	"github.com/stovetop-games/brigade/internal/models"
	"github.com/stovetop-games/brigade/internal/output"
	"github.com/stovetop-games/brigade/internal/simulator/producers"
)

// OutputDestination receives serialized events by topic.
type OutputDestination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

func (s *Simulator) determineOutputDestination() (OutputDestination, error) {
	cfg := s.Config
	switch cfg.OutputDestination {
	case "kafka":
		brokers := strings.Split(cfg.KafkaBrokerList, ",")
		return producers.NewKafkaOutput(brokers)
	case "postgres":
		return output.NewPostgresOutput(context.Background(), cfg.Database)
	case "parquet":
		return NewParquetOutput(cfg)
	case "json":
		return NewJSONOutput(cfg.OutputPath, cfg.OutputFolder), nil
	case "", "console":
		return &ConsoleOutput{}, nil
	default:
		return nil, fmt.Errorf("unsupported output destination: %s", cfg.OutputDestination)
	}
}

// ConsoleOutput prints each event to stdout, prefixed with its topic.
type ConsoleOutput struct{}

func (c *ConsoleOutput) WriteMessage(topic string, msg []byte) error {
	_, err := fmt.Fprintf(os.Stdout, "[%s] %s\n", topic, string(msg))
	return err
}

func (c *ConsoleOutput) Close() error { return nil }

// JSONOutput appends events to newline-delimited JSON files, one tree of
// season/day partitions per topic.
type JSONOutput struct {
	basePath string
	folder   string
	files    map[string]*os.File
}

func NewJSONOutput(basePath, folder string) *JSONOutput {
	return &JSONOutput{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*os.File),
	}
}

type partitionKey struct {
	Season int `json:"season"`
	Day    int `json:"day"`
}

func (j *JSONOutput) WriteMessage(topic string, msg []byte) error {
	var pk partitionKey
	if err := json.Unmarshal(msg, &pk); err != nil {
		return fmt.Errorf("invalid event payload for topic %s: %w", topic, err)
	}

	partitionPath := fmt.Sprintf("season=%d/day=%02d", pk.Season, pk.Day)
	fullPath := filepath.Join(j.basePath, j.folder, topic, partitionPath)
	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return err
	}

	fileKey := topic + "_" + partitionPath
	file, ok := j.files[fileKey]
	if !ok {
		var err error
		file, err = os.Create(filepath.Join(fullPath, "data.json"))
		if err != nil {
			return err
		}
		j.files[fileKey] = file
	}

	if _, err := file.Write(msg); err != nil {
		return err
	}
	_, err := file.WriteString("\n")
	return err
}

func (j *JSONOutput) Close() error {
	for _, file := range j.files {
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}

// serviceRow is the parquet schema for resolved services.
type serviceRow struct {
	Season        int32   `parquet:"name=season, type=INT32"`
	Day           int32   `parquet:"name=day, type=INT32"`
	Service       string  `parquet:"name=service, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	ServiceIndex  int32   `parquet:"name=service_index, type=INT32"`
	Covers        int32   `parquet:"name=covers, type=INT32"`
	TicketTime    float64 `parquet:"name=ticket_time, type=DOUBLE"`
	SendBackPct   float64 `parquet:"name=send_back_pct, type=DOUBLE"`
	ColdPlatePct  float64 `parquet:"name=cold_plate_pct, type=DOUBLE"`
	FQI           float64 `parquet:"name=fqi, type=DOUBLE"`
	CustomerTotal int32   `parquet:"name=customer_total, type=INT32"`
	Profit        float64 `parquet:"name=profit, type=DOUBLE"`
	CashFloat     float64 `parquet:"name=cash_float, type=DOUBLE"`
	Problems      string  `parquet:"name=problems, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// inspectionRow is the parquet schema for weekly inspections.
type inspectionRow struct {
	Season       int32   `parquet:"name=season, type=INT32"`
	Day          int32   `parquet:"name=day, type=INT32"`
	ServiceIndex int32   `parquet:"name=service_index, type=INT32"`
	Score        float64 `parquet:"name=score, type=DOUBLE"`
	Stars        int32   `parquet:"name=stars, type=INT32"`
}

// leaderboardRow is one ranked restaurant at one leaderboard snapshot.
type leaderboardRow struct {
	Season       int32   `parquet:"name=season, type=INT32"`
	Day          int32   `parquet:"name=day, type=INT32"`
	ServiceIndex int32   `parquet:"name=service_index, type=INT32"`
	RestaurantID string  `parquet:"name=restaurant_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Name         string  `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Kind         string  `parquet:"name=kind, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Stars        int32   `parquet:"name=stars, type=INT32"`
	BestScore    float64 `parquet:"name=best_score, type=DOUBLE"`
	BestRank     int32   `parquet:"name=best_rank, type=INT32"`
}

// ParquetOutput archives events as parquet, locally or to cloud storage.
type ParquetOutput struct {
	basePath           string
	folder             string
	writers            map[string]*writer.ParquetWriter
	files              map[string]source.ParquetFile
	cloudWriterFactory cloudwriter.CloudWriterFactory
	cloudBucketName    string
	skipped            map[string]bool
}

func NewParquetOutput(config *models.Config) (*ParquetOutput, error) {
	p := &ParquetOutput{
		basePath: config.OutputPath,
		folder:   config.OutputFolder,
		writers:  make(map[string]*writer.ParquetWriter),
		files:    make(map[string]source.ParquetFile),
		skipped:  make(map[string]bool),
	}

	if config.CloudStorage.Provider != "" {
		switch config.CloudStorage.Provider {
		case "s3":
			factory, err := cloudwriter.NewS3WriterFactory(config.CloudStorage.Region)
			if err != nil {
				return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
			}
			p.cloudWriterFactory = factory
			p.cloudBucketName = config.CloudStorage.BucketName
		default:
			return nil, fmt.Errorf("unsupported cloud storage provider: %s", config.CloudStorage.Provider)
		}
	}

	return p, nil
}

func rowPrototype(topic string) interface{} {
	switch topic {
	case topicServiceResults:
		return new(serviceRow)
	case topicInspections:
		return new(inspectionRow)
	case topicLeaderboards:
		return new(leaderboardRow)
	default:
		return nil
	}
}

func (p *ParquetOutput) WriteMessage(topic string, msg []byte) error {
	proto := rowPrototype(topic)
	if proto == nil {
		// topics without a tabular schema are not archived
		if !p.skipped[topic] {
			p.skipped[topic] = true
			log.Printf("No parquet schema for topic %s; skipping", topic)
		}
		return nil
	}

	pw, err := p.writerFor(topic, proto)
	if err != nil {
		return err
	}

	switch topic {
	case topicServiceResults:
		var res models.ServiceResult
		if err := json.Unmarshal(msg, &res); err != nil {
			return err
		}
		return pw.Write(serviceRow{
			Season:        int32(res.Season),
			Day:           int32(res.Day),
			Service:       string(res.Service),
			ServiceIndex:  int32(res.ServiceIndex),
			Covers:        int32(res.Covers),
			TicketTime:    res.TicketTime,
			SendBackPct:   res.SendBackPct,
			ColdPlatePct:  res.ColdPlatePct,
			FQI:           res.FQI,
			CustomerTotal: int32(res.CustomerTotal),
			Profit:        res.Profit,
			CashFloat:     res.CashFloat,
			Problems:      strings.Join(res.Problems, "; "),
		})
	case topicInspections:
		var ev inspectionEvent
		if err := json.Unmarshal(msg, &ev); err != nil {
			return err
		}
		return pw.Write(inspectionRow{
			Season:       int32(ev.Season),
			Day:          int32(ev.Day),
			ServiceIndex: int32(ev.ServiceIndex),
			Score:        ev.Score,
			Stars:        int32(ev.Stars),
		})
	case topicLeaderboards:
		var ev leaderboardEvent
		if err := json.Unmarshal(msg, &ev); err != nil {
			return err
		}
		for _, entry := range ev.Entries {
			row := leaderboardRow{
				Season:       int32(ev.Season),
				Day:          int32(ev.Day),
				ServiceIndex: int32(ev.ServiceIndex),
				RestaurantID: entry.ID,
				Name:         entry.Name,
				Kind:         entry.Kind,
				Stars:        int32(entry.Stars),
				BestScore:    entry.BestScore,
				BestRank:     int32(entry.BestRank),
			}
			if err := pw.Write(row); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}

func (p *ParquetOutput) writerFor(topic string, proto interface{}) (*writer.ParquetWriter, error) {
	if pw, ok := p.writers[topic]; ok {
		return pw, nil
	}

	var fw source.ParquetFile
	var err error
	if p.cloudWriterFactory != nil {
		objectPath := filepath.Join(p.folder, topic, "data.parquet")
		cw, err := p.cloudWriterFactory.NewWriter(p.cloudBucketName, objectPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud file writer: %w", err)
		}
		fw = cloudwriter.NewParquetFile(cw)
	} else {
		fullPath := filepath.Join(p.basePath, p.folder, topic)
		if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
			return nil, err
		}
		fw, err = local.NewLocalFileWriter(filepath.Join(fullPath, "data.parquet"))
		if err != nil {
			return nil, fmt.Errorf("failed to create local file writer: %w", err)
		}
	}

	pw, err := writer.NewParquetWriter(fw, proto, 4)
	if err != nil {
		return nil, fmt.Errorf("failed to create parquet writer: %w", err)
	}
	p.writers[topic] = pw
	p.files[topic] = fw
	return pw, nil
}

func (p *ParquetOutput) Close() error {
	for topic, pw := range p.writers {
		if err := pw.WriteStop(); err != nil {
			return fmt.Errorf("failed to finalize parquet topic %s: %w", topic, err)
		}
	}
	for topic, fw := range p.files {
		if err := fw.Close(); err != nil {
			return fmt.Errorf("failed to close parquet file for topic %s: %w", topic, err)
		}
	}
	return nil
}
