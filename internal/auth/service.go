package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/2beens/liftlog/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "liftlog-service-session||"
	tokensSetKey     = "liftlog-service-sessions"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Admin struct {
	Username     string
	PasswordHash string
}

type Service struct {
	admin       *Admin
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(admin *Admin, ttl time.Duration, redisClient *redis.Client) *Service {
	return &Service{
		admin:          admin,
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (as *Service) Login(ctx context.Context, username, password string, createdAt time.Time) (string, error) {
	if username != as.admin.Username || !pkg.CheckPasswordHash(password, as.admin.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := as.RandStringFunc(35)
	if err != nil {
		return "", err
	}

	sessionKey := sessionKeyPrefix + token
	if err := as.redisClient.Set(ctx, sessionKey, createdAt.Unix(), 0).Err(); err != nil {
		return "", err
	}

	// add token to the list of sessions
	if err := as.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", err
	}

	return token, nil
}

func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := as.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		return false, err
	}

	createdAtUnix, err := strconv.ParseInt(cmd.Val(), 10, 64)
	if err != nil {
		return false, err
	}

	if err := as.redisClient.Set(ctx, sessionKey, 0, 0).Err(); err != nil {
		return false, err
	}

	// remove token from the list of sessions
	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, err
	}

	return createdAtUnix > 0, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("auth service, scan and clean, get sessions: %s", err)
		return
	}

	var cleaned int
	for _, token := range cmd.Val() {
		sessionKey := sessionKeyPrefix + token
		createdAtUnixStr, err := as.redisClient.Get(ctx, sessionKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
					log.Errorf("auth service, scan and clean, remove dangling token: %s", err)
				}
				cleaned++
			}
			continue
		}

		createdAtUnix, err := strconv.ParseInt(createdAtUnixStr, 10, 64)
		if err != nil {
			continue
		}

		if time.Since(time.Unix(createdAtUnix, 0)) <= as.ttl {
			continue
		}

		if err := as.redisClient.Del(ctx, sessionKey).Err(); err != nil {
			log.Errorf("auth service, scan and clean, delete session: %s", err)
			continue
		}
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("auth service, scan and clean, remove token: %s", err)
			continue
		}
		cleaned++
	}

	if cleaned > 0 {
		log.Debugf("auth service, scan and clean: %d stale sessions removed", cleaned)
	}
}
