package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fittrack-session||"
	tokensSetKey     = "fittrack-sessions"
)

var ErrInvalidSession = errors.New("invalid session")

type LoginSession struct {
	Token     string
	UserID    int
	CreatedAt time.Time
}

// Service manages login sessions in redis: token -> "userID:createdAtUnix".
type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (as *Service) Login(ctx context.Context, userID int, createdAt time.Time) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.session.login")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	token, err := as.RandStringFunc(35)
	if err != nil {
		return "", err
	}

	sessionKey := sessionKeyPrefix + token
	sessionVal := fmt.Sprintf("%d:%d", userID, createdAt.Unix())
	if err := as.redisClient.Set(ctx, sessionKey, sessionVal, as.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	// add token to list of sessions
	if err := as.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", fmt.Errorf("add session token: %w", err)
	}

	return token, nil
}

func (as *Service) Logout(ctx context.Context, token string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.session.logout")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	deleted, err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}

	// remove token from the list of sessions
	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, err
	}

	return deleted > 0, nil
}

// SessionUser resolves a session token into the logged-in user id.
// A missing or expired session is not an error, ok is false then.
func (as *Service) SessionUser(ctx context.Context, token string) (userID int, ok bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.session.user")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	session, err := as.getSession(ctx, token)
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	if time.Since(session.CreatedAt) > as.ttl {
		return 0, false, nil
	}

	return session.UserID, true, nil
}

func (as *Service) getSession(ctx context.Context, token string) (*LoginSession, error) {
	sessionVal, err := as.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return nil, err
	}

	userID, createdAt, err := parseSessionValue(sessionVal)
	if err != nil {
		return nil, err
	}

	return &LoginSession{
		Token:     token,
		UserID:    userID,
		CreatedAt: createdAt,
	}, nil
}

func parseSessionValue(val string) (int, time.Time, error) {
	userIDStr, createdAtStr, found := strings.Cut(val, ":")
	if !found {
		return 0, time.Time{}, fmt.Errorf("%w: malformed value", ErrInvalidSession)
	}

	userID, err := strconv.Atoi(userIDStr)
	if err != nil || userID <= 0 {
		return 0, time.Time{}, fmt.Errorf("%w: bad user id [%s]", ErrInvalidSession, userIDStr)
	}

	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("%w: bad timestamp [%s]", ErrInvalidSession, createdAtStr)
	}

	return userID, time.Unix(createdAtUnix, 0), nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old.
// Sessions already expired by redis are only removed from the tokens set.
func (as *Service) ScanAndClean(ctx context.Context) {
	sessionTokens, err := as.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("auth service, scan and clean, get sessions: %s", err)
		return
	}

	if len(sessionTokens) == 0 {
		log.Debugln("auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		session, err := as.getSession(ctx, token)
		if errors.Is(err, redis.Nil) || errors.Is(err, ErrInvalidSession) {
			toRemove = append(toRemove, token)
			continue
		}
		if err != nil {
			log.Errorf("auth service, scan and clean token: %s", err)
			continue
		}

		if time.Since(session.CreatedAt) > as.ttl {
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
			log.Errorf("auth service, clean session: %s", err)
			continue
		}

		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("auth service, clean session token: %s", err)
			continue
		}
	}
	log.Debugf("auth service, scan and clean done, removed %d sessions", len(toRemove))
}
