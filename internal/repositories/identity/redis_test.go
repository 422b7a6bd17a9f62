package identity

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/roomsync/internal/common/clock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		Clock:       clock.NewFake(s.testNow),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSignInIssuesNewSubject() {
	out, err := s.repo.SignInAnonymously(context.Background(), &SignInInput{})
	s.Require().NoError(err)

	s.NotEmpty(out.Subject)
	s.False(out.Restored)
	s.True(s.mr.Exists(subjectKeyPrefix + out.Subject))
}

func (s *RedisRepositoryTestSuite) TestSignInReusesRegisteredSubject() {
	first, err := s.repo.SignInAnonymously(context.Background(), &SignInInput{})
	s.Require().NoError(err)

	again, err := s.repo.SignInAnonymously(context.Background(), &SignInInput{PreviousSubject: first.Subject})
	s.Require().NoError(err)

	s.Equal(first.Subject, again.Subject)
	s.True(again.Restored)
}

func (s *RedisRepositoryTestSuite) TestSignInAfterSignOutIssuesFreshSubject() {
	first, err := s.repo.SignInAnonymously(context.Background(), &SignInInput{})
	s.Require().NoError(err)

	s.Require().NoError(s.repo.SignOut(context.Background(), &SignOutInput{Subject: first.Subject}))

	again, err := s.repo.SignInAnonymously(context.Background(), &SignInInput{PreviousSubject: first.Subject})
	s.Require().NoError(err)

	s.NotEqual(first.Subject, again.Subject)
	s.False(again.Restored)
}

func (s *RedisRepositoryTestSuite) TestSignOutRequiresSubject() {
	err := s.repo.SignOut(context.Background(), &SignOutInput{})
	s.ErrorIs(err, ErrSubjectRequired)
}
