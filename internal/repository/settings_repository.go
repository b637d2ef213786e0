package repository

import (
	"context"
	"fmt"
	"strconv"

	"assessment-service/internal/engine"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type settingDoc struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// SettingsRepository stores engine tunables as key/value documents. The
// effective configuration is re-read per request, so updates take effect on
// the next quiz without a restart.
type SettingsRepository struct {
	Col *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{Col: db.Collection("settings")}
}

// Load overlays stored values on the defaults and validates the result.
// Missing keys fall back to defaults; an unrecognized or unparsable stored
// key is a configuration error, not something to run past.
func (r *SettingsRepository) Load(ctx context.Context) (engine.Config, error) {
	cfg := engine.DefaultConfig()
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return cfg, err
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var doc settingDoc
		if err := cur.Decode(&doc); err != nil {
			return cfg, err
		}
		if err := apply(&cfg, doc.Key, doc.Value); err != nil {
			return cfg, err
		}
	}
	if err := cur.Err(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("stored settings invalid: %w", err)
	}
	return cfg, nil
}

// Set validates the key and value against the current configuration before
// persisting, so a bad update is refused instead of breaking later loads.
func (r *SettingsRepository) Set(ctx context.Context, key, value string) error {
	cfg, err := r.Load(ctx)
	if err != nil {
		return err
	}
	if err := apply(&cfg, key, value); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	opts := options.Replace().SetUpsert(true)
	_, err = r.Col.ReplaceOne(ctx, bson.M{"_id": key}, settingDoc{Key: key, Value: value}, opts)
	return err
}

// List returns every effective setting, defaults included.
func (r *SettingsRepository) List(ctx context.Context) (map[string]string, error) {
	cfg, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"promote_threshold":    strconv.FormatFloat(cfg.PromoteThreshold, 'g', -1, 64),
		"demote_threshold":     strconv.FormatFloat(cfg.DemoteThreshold, 'g', -1, 64),
		"weak_topic_threshold": strconv.FormatFloat(cfg.WeakTopicThreshold, 'g', -1, 64),
		"weak_share_fraction":  strconv.FormatFloat(cfg.WeakShareFraction, 'g', -1, 64),
		"lookback_quizzes":     strconv.Itoa(cfg.LookbackQuizzes),
		"weak_lookback":        strconv.Itoa(cfg.WeakLookback),
		"quiz_size":            strconv.Itoa(cfg.QuizSize),
	}, nil
}

func apply(cfg *engine.Config, key, value string) error {
	switch key {
	case "promote_threshold":
		return parseFloat(value, key, &cfg.PromoteThreshold)
	case "demote_threshold":
		return parseFloat(value, key, &cfg.DemoteThreshold)
	case "weak_topic_threshold":
		return parseFloat(value, key, &cfg.WeakTopicThreshold)
	case "weak_share_fraction":
		return parseFloat(value, key, &cfg.WeakShareFraction)
	case "lookback_quizzes":
		return parseInt(value, key, &cfg.LookbackQuizzes)
	case "weak_lookback":
		return parseInt(value, key, &cfg.WeakLookback)
	case "quiz_size":
		return parseInt(value, key, &cfg.QuizSize)
	default:
		return fmt.Errorf("unrecognized setting %q", key)
	}
}

func parseFloat(value, key string, dst *float64) error {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	*dst = f
	return nil
}

func parseInt(value, key string, dst *int) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	*dst = n
	return nil
}
