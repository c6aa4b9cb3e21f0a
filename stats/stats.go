package stats

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/brightfix/handyline/config"
)

const (
	chatCounterKey     = "handyline:chat_requests"
	voiceCounterKey    = "handyline:voice_requests"
	recentQuestionsKey = "handyline:recent_questions"
	recentQuestionsMax = 50
)

// Recorder mirrors lightweight usage counters into Redis. Redis is optional:
// if it is unreachable at startup the recorder disables itself and every
// method becomes a no-op, so stats never affect request handling.
type Recorder struct {
	client *redis.Client
}

// NewRecorder connects to Redis and returns a recorder. An unreachable Redis
// is not an error; the recorder comes back disabled.
func NewRecorder(cfg *config.Config) *Recorder {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Debug().Err(err).Str("addr", cfg.RedisURL).Msg("redis unavailable, usage stats disabled")
		return &Recorder{}
	}

	return &Recorder{client: client}
}

// Enabled reports whether a Redis backend is connected.
func (r *Recorder) Enabled() bool {
	return r != nil && r.client != nil
}

// RecordChat counts one chat question and remembers it in the recent list.
func (r *Recorder) RecordChat(ctx context.Context, question string) {
	r.record(ctx, chatCounterKey, question)
}

// RecordVoice counts one voice transcript and remembers it in the recent list.
func (r *Recorder) RecordVoice(ctx context.Context, transcript string) {
	r.record(ctx, voiceCounterKey, transcript)
}

func (r *Recorder) record(ctx context.Context, counterKey, question string) {
	if !r.Enabled() {
		return
	}
	pipe := r.client.Pipeline()
	pipe.Incr(ctx, counterKey)
	pipe.LPush(ctx, recentQuestionsKey, question)
	pipe.LTrim(ctx, recentQuestionsKey, 0, recentQuestionsMax-1)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Debug().Err(err).Msg("failed to record usage stats")
	}
}

// Totals returns the per-channel request counters. Zeros when disabled or on
// read failure.
func (r *Recorder) Totals(ctx context.Context) (chat, voice int64) {
	if !r.Enabled() {
		return 0, 0
	}
	chat, _ = r.client.Get(ctx, chatCounterKey).Int64()
	voice, _ = r.client.Get(ctx, voiceCounterKey).Int64()
	return chat, voice
}

// Close releases the Redis connection if one was established.
func (r *Recorder) Close() {
	if r.Enabled() {
		_ = r.client.Close()
	}
}
