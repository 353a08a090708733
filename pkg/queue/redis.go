package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/delverhq/delver/pkg/config"
)

// cancelFlagTTL bounds how long a cancel flag for an active job survives.
// Long enough to outlive the session timeout, short enough not to leak.
const cancelFlagTTL = time.Hour

// jobRetention is how long completed/failed job records are kept for
// progress queries before Redis expires them.
const jobRetention = time.Hour

// RedisQueue is a priority FIFO backed by Redis sorted sets.
//
// Layout, all under "delver:queue:{name}:":
//
//	waiting  zset  score = -priority*2^40 + claim sequence (FIFO within priority)
//	delayed  zset  score = ready-at unix millis (retry backoff)
//	active   zset  score = lease expiry unix millis (visibility timeout)
//	seq      string  monotonic claim sequence counter
//	job:{id} hash  data, state, attempts, max_attempts, backoff_ms,
//	               timeout_ms, priority, progress, phase, enqueued_at
//	cancel:{id} string  cooperative cancel flag for active jobs
//
// Claims promote due delayed jobs and pop the lowest-score waiting member
// atomically via Lua, so concurrent workers never double-claim.
type RedisQueue struct {
	rdb redis.UniversalClient
	cfg *config.QueueConfig

	waitingKey string
	delayedKey string
	activeKey  string
	seqKey     string
	jobPrefix  string
}

// NewRedisQueue creates a queue client for the configured queue name.
func NewRedisQueue(rdb redis.UniversalClient, cfg *config.QueueConfig) *RedisQueue {
	prefix := fmt.Sprintf("delver:queue:%s:", cfg.QueueName)
	return &RedisQueue{
		rdb:        rdb,
		cfg:        cfg,
		waitingKey: prefix + "waiting",
		delayedKey: prefix + "delayed",
		activeKey:  prefix + "active",
		seqKey:     prefix + "seq",
		jobPrefix:  prefix + "job:",
	}
}

// claimScript promotes due delayed jobs into waiting, then pops the best
// waiting job into active with a fresh lease.
//
// KEYS: waiting, delayed, active, seq
// ARGV: now millis, lease expiry millis, job key prefix
var claimScript = redis.NewScript(`
local due = redis.call('ZRANGEBYSCORE', KEYS[2], '-inf', ARGV[1])
for _, id in ipairs(due) do
  redis.call('ZREM', KEYS[2], id)
  local pr = tonumber(redis.call('HGET', ARGV[3] .. id, 'priority') or '0')
  local seq = redis.call('INCR', KEYS[4])
  redis.call('ZADD', KEYS[1], -pr * 2^40 + seq, id)
  redis.call('HSET', ARGV[3] .. id, 'state', 'waiting')
end
local ids = redis.call('ZRANGE', KEYS[1], 0, 0)
if #ids == 0 then
  return false
end
local id = ids[1]
redis.call('ZREM', KEYS[1], id)
redis.call('ZADD', KEYS[3], ARGV[2], id)
redis.call('HINCRBY', ARGV[3] .. id, 'attempts', 1)
redis.call('HSET', ARGV[3] .. id, 'state', 'active')
return id
`)

// removeScript removes a waiting/delayed job outright, or flags an active
// one for cooperative cancellation.
//
// KEYS: waiting, delayed, active
// ARGV: job id, job hash key, cancel flag key, cancel flag TTL seconds
// Returns 1 removed, 0 flagged, -1 not found.
var removeScript = redis.NewScript(`
if redis.call('ZREM', KEYS[1], ARGV[1]) == 1 or redis.call('ZREM', KEYS[2], ARGV[1]) == 1 then
  redis.call('DEL', ARGV[2])
  return 1
end
if redis.call('ZSCORE', KEYS[3], ARGV[1]) then
  redis.call('SET', ARGV[3], '1', 'EX', ARGV[4])
  return 0
end
return -1
`)

// requeueExpiredScript moves jobs whose lease has expired back to waiting,
// or marks them failed if the claim that expired was their last attempt.
//
// KEYS: active, waiting, seq
// ARGV: now millis, job key prefix
// Returns {requeued, failed}.
var requeueExpiredScript = redis.NewScript(`
local expired = redis.call('ZRANGEBYSCORE', KEYS[1], '-inf', ARGV[1])
local requeued = 0
local failed = 0
for _, id in ipairs(expired) do
  redis.call('ZREM', KEYS[1], id)
  local key = ARGV[2] .. id
  local attempts = tonumber(redis.call('HGET', key, 'attempts') or '0')
  local max = tonumber(redis.call('HGET', key, 'max_attempts') or '3')
  if attempts >= max then
    redis.call('HSET', key, 'state', 'failed', 'error', 'lease expired on final attempt')
    failed = failed + 1
  else
    local pr = tonumber(redis.call('HGET', key, 'priority') or '0')
    local seq = redis.call('INCR', KEYS[3])
    redis.call('ZADD', KEYS[2], -pr * 2^40 + seq, id)
    redis.call('HSET', key, 'state', 'waiting')
    requeued = requeued + 1
  end
end
return {requeued, failed}
`)

// Enqueue adds a job to the waiting set. Enqueueing an id that already
// exists overwrites the previous record.
func (q *RedisQueue) Enqueue(ctx context.Context, sessionID string, data JobData, opts EnqueueOptions) error {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = q.cfg.MaxAttempts
	}
	if opts.Backoff <= 0 {
		opts.Backoff = q.cfg.RetryBackoff
	}
	if opts.Timeout <= 0 {
		opts.Timeout = q.cfg.SessionTimeout
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal job data: %w", err)
	}

	seq, err := q.rdb.Incr(ctx, q.seqKey).Result()
	if err != nil {
		return fmt.Errorf("failed to allocate claim sequence: %w", err)
	}

	jobKey := q.jobPrefix + sessionID
	pipe := q.rdb.TxPipeline()
	pipe.HSet(ctx, jobKey,
		"data", payload,
		"state", string(JobStateWaiting),
		"attempts", 0,
		"max_attempts", opts.MaxAttempts,
		"backoff_ms", opts.Backoff.Milliseconds(),
		"timeout_ms", opts.Timeout.Milliseconds(),
		"priority", opts.Priority,
		"progress", 0,
		"phase", "",
		"enqueued_at", time.Now().UnixMilli(),
	)
	pipe.Persist(ctx, jobKey)
	pipe.ZAdd(ctx, q.waitingKey, redis.Z{
		Score:  -float64(opts.Priority)*float64(1<<40) + float64(seq),
		Member: sessionID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to enqueue job %s: %w", sessionID, err)
	}
	return nil
}

// Claim atomically claims the next job. The lease expires after the job's
// timeout; renew it with RenewLease while processing.
func (q *RedisQueue) Claim(ctx context.Context) (*Job, error) {
	now := time.Now()
	// The lease written here assumes the configured timeout; after loading
	// the job record the lease is re-armed with the job's own timeout.
	res, err := claimScript.Run(ctx, q.rdb,
		[]string{q.waitingKey, q.delayedKey, q.activeKey, q.seqKey},
		now.UnixMilli(),
		now.Add(q.cfg.SessionTimeout).UnixMilli(),
		q.jobPrefix,
	).Result()
	if err == redis.Nil {
		return nil, ErrNoJobsAvailable
	}
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	sessionID, ok := res.(string)
	if !ok || sessionID == "" {
		return nil, ErrNoJobsAvailable
	}

	job, err := q.loadJob(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if timeout := job.timeout; timeout != q.cfg.SessionTimeout {
		if err := q.renewUntil(ctx, sessionID, now.Add(timeout)); err != nil {
			return nil, err
		}
	}
	return job, nil
}

// RenewLease extends the visibility timeout of an active job.
func (q *RedisQueue) RenewLease(ctx context.Context, sessionID string) error {
	timeoutMS, err := q.rdb.HGet(ctx, q.jobPrefix+sessionID, "timeout_ms").Int64()
	if err != nil {
		return fmt.Errorf("failed to read job timeout: %w", err)
	}
	return q.renewUntil(ctx, sessionID, time.Now().Add(time.Duration(timeoutMS)*time.Millisecond))
}

func (q *RedisQueue) renewUntil(ctx context.Context, sessionID string, expiry time.Time) error {
	err := q.rdb.ZAddXX(ctx, q.activeKey, redis.Z{
		Score:  float64(expiry.UnixMilli()),
		Member: sessionID,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to renew lease for %s: %w", sessionID, err)
	}
	return nil
}

// Complete removes a finished job from the queue. The record is retained
// briefly for progress queries, then expires.
func (q *RedisQueue) Complete(ctx context.Context, sessionID string) error {
	jobKey := q.jobPrefix + sessionID
	pipe := q.rdb.TxPipeline()
	pipe.ZRem(ctx, q.activeKey, sessionID)
	pipe.HSet(ctx, jobKey, "state", string(JobStateCompleted), "progress", 100)
	pipe.Expire(ctx, jobKey, jobRetention)
	pipe.Del(ctx, q.cancelKey(sessionID))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to complete job %s: %w", sessionID, err)
	}
	return nil
}

// Fail records a failed delivery. If attempts remain, the job moves to
// delayed with exponential backoff and Fail returns true; otherwise the
// job is terminally failed and Fail returns false.
func (q *RedisQueue) Fail(ctx context.Context, sessionID string, cause string) (requeued bool, err error) {
	jobKey := q.jobPrefix + sessionID
	fields, err := q.rdb.HMGet(ctx, jobKey, "attempts", "max_attempts", "backoff_ms").Result()
	if err != nil {
		return false, fmt.Errorf("failed to read job %s: %w", sessionID, err)
	}
	attempts := fieldInt(fields[0], 0)
	maxAttempts := fieldInt(fields[1], q.cfg.MaxAttempts)
	backoff := time.Duration(fieldInt(fields[2], int(q.cfg.RetryBackoff.Milliseconds()))) * time.Millisecond

	if attempts >= maxAttempts {
		if err := q.discard(ctx, sessionID, cause); err != nil {
			return false, err
		}
		return false, nil
	}

	// Exponential backoff: base, 2x base, 4x base, ...
	if attempts < 1 {
		attempts = 1
	}
	delay := backoff << (attempts - 1)
	pipe := q.rdb.TxPipeline()
	pipe.ZRem(ctx, q.activeKey, sessionID)
	pipe.ZAdd(ctx, q.delayedKey, redis.Z{
		Score:  float64(time.Now().Add(delay).UnixMilli()),
		Member: sessionID,
	})
	pipe.HSet(ctx, jobKey, "state", string(JobStateDelayed), "error", cause)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to delay job %s: %w", sessionID, err)
	}
	return true, nil
}

// Discard terminally fails a job regardless of remaining attempts.
func (q *RedisQueue) Discard(ctx context.Context, sessionID string, cause string) error {
	return q.discard(ctx, sessionID, cause)
}

func (q *RedisQueue) discard(ctx context.Context, sessionID string, cause string) error {
	jobKey := q.jobPrefix + sessionID
	pipe := q.rdb.TxPipeline()
	pipe.ZRem(ctx, q.activeKey, sessionID)
	pipe.ZRem(ctx, q.delayedKey, sessionID)
	pipe.ZRem(ctx, q.waitingKey, sessionID)
	pipe.HSet(ctx, jobKey, "state", string(JobStateFailed), "error", cause)
	pipe.Expire(ctx, jobKey, jobRetention)
	pipe.Del(ctx, q.cancelKey(sessionID))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to discard job %s: %w", sessionID, err)
	}
	return nil
}

// Remove cancels a job. Waiting and delayed jobs are removed outright and
// Remove returns true. Active jobs get a cancel flag the executor observes
// at step boundaries, and Remove returns false.
func (q *RedisQueue) Remove(ctx context.Context, sessionID string) (removed bool, err error) {
	res, err := removeScript.Run(ctx, q.rdb,
		[]string{q.waitingKey, q.delayedKey, q.activeKey},
		sessionID,
		q.jobPrefix+sessionID,
		q.cancelKey(sessionID),
		int(cancelFlagTTL.Seconds()),
	).Int()
	if err != nil {
		return false, fmt.Errorf("failed to remove job %s: %w", sessionID, err)
	}
	return res == 1, nil
}

// CancelRequested reports whether an active job has been flagged for
// cooperative cancellation.
func (q *RedisQueue) CancelRequested(ctx context.Context, sessionID string) (bool, error) {
	n, err := q.rdb.Exists(ctx, q.cancelKey(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check cancel flag for %s: %w", sessionID, err)
	}
	return n > 0, nil
}

// ReportProgress updates the broker-side progress record for a job.
func (q *RedisQueue) ReportProgress(ctx context.Context, sessionID string, percent int, phase string) error {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	err := q.rdb.HSet(ctx, q.jobPrefix+sessionID, "progress", percent, "phase", phase).Err()
	if err != nil {
		return fmt.Errorf("failed to report progress for %s: %w", sessionID, err)
	}
	return nil
}

// Progress returns the last reported progress and phase for a job.
func (q *RedisQueue) Progress(ctx context.Context, sessionID string) (percent int, phase string, err error) {
	fields, err := q.rdb.HMGet(ctx, q.jobPrefix+sessionID, "progress", "phase").Result()
	if err != nil {
		return 0, "", fmt.Errorf("failed to read progress for %s: %w", sessionID, err)
	}
	phase, _ = fields[1].(string)
	return fieldInt(fields[0], 0), phase, nil
}

// State returns the broker-side state of a job.
func (q *RedisQueue) State(ctx context.Context, sessionID string) (JobState, error) {
	state, err := q.rdb.HGet(ctx, q.jobPrefix+sessionID, "state").Result()
	if err == redis.Nil {
		return "", ErrNoJobsAvailable
	}
	if err != nil {
		return "", fmt.Errorf("failed to read state for %s: %w", sessionID, err)
	}
	return JobState(state), nil
}

// RequeueExpired recovers jobs whose lease expired without completion,
// typically after a worker crash. Jobs with attempts left return to
// waiting; jobs that expired on their final attempt are terminally failed.
func (q *RedisQueue) RequeueExpired(ctx context.Context) (requeued, failed int, err error) {
	res, err := requeueExpiredScript.Run(ctx, q.rdb,
		[]string{q.activeKey, q.waitingKey, q.seqKey},
		time.Now().UnixMilli(),
		q.jobPrefix,
	).Int64Slice()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to requeue expired leases: %w", err)
	}
	if len(res) != 2 {
		return 0, 0, fmt.Errorf("unexpected requeue script result: %v", res)
	}
	return int(res[0]), int(res[1]), nil
}

// Depth returns the number of jobs waiting or delayed.
func (q *RedisQueue) Depth(ctx context.Context) (int, error) {
	pipe := q.rdb.Pipeline()
	waiting := pipe.ZCard(ctx, q.waitingKey)
	delayed := pipe.ZCard(ctx, q.delayedKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to read queue depth: %w", err)
	}
	return int(waiting.Val() + delayed.Val()), nil
}

// ActiveCount returns the number of leased jobs across all pods.
func (q *RedisQueue) ActiveCount(ctx context.Context) (int, error) {
	n, err := q.rdb.ZCard(ctx, q.activeKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read active count: %w", err)
	}
	return int(n), nil
}

func (q *RedisQueue) cancelKey(sessionID string) string {
	return q.jobPrefix[:len(q.jobPrefix)-len("job:")] + "cancel:" + sessionID
}

// loadJob reads a job hash into a Job.
func (q *RedisQueue) loadJob(ctx context.Context, sessionID string) (*Job, error) {
	fields, err := q.rdb.HGetAll(ctx, q.jobPrefix+sessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load job %s: %w", sessionID, err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("job %s has no record", sessionID)
	}

	var data JobData
	if raw := fields["data"]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return nil, fmt.Errorf("failed to decode job %s data: %w", sessionID, err)
		}
	}

	job := &Job{
		SessionID:   sessionID,
		Data:        data,
		Attempts:    atoi(fields["attempts"], 0),
		MaxAttempts: atoi(fields["max_attempts"], q.cfg.MaxAttempts),
		Priority:    atoi(fields["priority"], 0),
		timeout:     time.Duration(atoi(fields["timeout_ms"], int(q.cfg.SessionTimeout.Milliseconds()))) * time.Millisecond,
	}
	if ms := atoi(fields["enqueued_at"], 0); ms > 0 {
		job.EnqueuedAt = time.UnixMilli(int64(ms))
	}
	return job, nil
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func fieldInt(v any, def int) int {
	s, ok := v.(string)
	if !ok {
		return def
	}
	return atoi(s, def)
}
