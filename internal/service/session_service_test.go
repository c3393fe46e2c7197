package service

import (
	"context"
	"sort"
	"testing"

	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeSessionRepo struct {
	sessions  map[string]*model.Session
	questions *fakeQuestionStore
	deleted   []string
}

func newFakeSessionRepo(questions *fakeQuestionStore) *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*model.Session{}, questions: questions}
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *model.Session) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	copied := *session
	r.sessions[session.ID] = &copied
	return nil
}

func (r *fakeSessionRepo) FindByID(ctx context.Context, id string) (*model.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSessionRepo) FindByIDWithQuestions(ctx context.Context, id string) (*model.Session, error) {
	s, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, q := range r.questions.questions {
		if q.SessionID == id {
			s.Questions = append(s.Questions, *q)
		}
	}
	// Pinned first, then insertion order, matching the repository query.
	sort.SliceStable(s.Questions, func(i, j int) bool {
		if s.Questions[i].IsPinned != s.Questions[j].IsPinned {
			return s.Questions[i].IsPinned
		}
		return s.Questions[i].ID < s.Questions[j].ID
	})
	return s, nil
}

func (r *fakeSessionRepo) FindByUser(ctx context.Context, userID uint) ([]model.Session, error) {
	var out []model.Session
	for _, s := range r.sessions {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	delete(r.sessions, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func testSessionService() (*SessionService, *fakeSessionRepo, *fakeQuestionStore) {
	questions := newFakeQuestionStore()
	repo := newFakeSessionRepo(questions)
	return NewSessionService(repo, questions), repo, questions
}

func TestCreateSessionWithInitialQuestions(t *testing.T) {
	svc, _, questions := testSessionService()

	session, err := svc.CreateSession(context.Background(), 1, &CreateSessionRequest{
		Role:          "Backend Engineer",
		Experience:    "3",
		TopicsToFocus: "Go, SQL",
		Questions: []QuestionInput{
			{Question: "Q1?", Answer: "A1.", Difficulty: "easy"},
			{Question: "Q2?", Answer: "A2."},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, uint(1), session.UserID)
	require.Len(t, session.Questions, 2)
	assert.Equal(t, model.DifficultyEasy, session.Questions[0].Difficulty)
	assert.Equal(t, model.DifficultyMedium, session.Questions[1].Difficulty)
	require.Len(t, questions.batches, 1)
}

func TestCreateSessionWithoutQuestions(t *testing.T) {
	svc, _, questions := testSessionService()

	session, err := svc.CreateSession(context.Background(), 1, &CreateSessionRequest{
		Role:          "SRE",
		Experience:    "5",
		TopicsToFocus: "Kubernetes",
	})
	require.NoError(t, err)
	assert.Empty(t, session.Questions)
	assert.Empty(t, questions.batches)
}

func TestGetSessionOwnership(t *testing.T) {
	svc, _, _ := testSessionService()

	created, err := svc.CreateSession(context.Background(), 1, &CreateSessionRequest{
		Role: "SRE", Experience: "5", TopicsToFocus: "Kubernetes",
	})
	require.NoError(t, err)

	got, err := svc.GetSession(context.Background(), created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetSession(context.Background(), created.ID, 2)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	_, err = svc.GetSession(context.Background(), "missing", 1)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestGetSessionPinnedQuestionsFirst(t *testing.T) {
	svc, _, questions := testSessionService()

	created, err := svc.CreateSession(context.Background(), 1, &CreateSessionRequest{
		Role: "SRE", Experience: "5", TopicsToFocus: "Kubernetes",
		Questions: []QuestionInput{
			{Question: "Q1?"},
			{Question: "Q2?"},
			{Question: "Q3?"},
		},
	})
	require.NoError(t, err)

	// Pin the last question and re-read.
	for _, q := range questions.questions {
		if q.Question == "Q3?" {
			q.IsPinned = true
		}
	}

	got, err := svc.GetSession(context.Background(), created.ID, 1)
	require.NoError(t, err)
	require.Len(t, got.Questions, 3)
	assert.Equal(t, "Q3?", got.Questions[0].Question)
	assert.Equal(t, "Q1?", got.Questions[1].Question)
}

func TestGetMySessions(t *testing.T) {
	svc, _, _ := testSessionService()

	for i := 0; i < 2; i++ {
		_, err := svc.CreateSession(context.Background(), 1, &CreateSessionRequest{
			Role: "SRE", Experience: "5", TopicsToFocus: "Kubernetes",
		})
		require.NoError(t, err)
	}
	_, err := svc.CreateSession(context.Background(), 2, &CreateSessionRequest{
		Role: "Frontend", Experience: "2", TopicsToFocus: "React",
	})
	require.NoError(t, err)

	mine, err := svc.GetMySessions(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestDeleteSession(t *testing.T) {
	svc, repo, _ := testSessionService()

	created, err := svc.CreateSession(context.Background(), 1, &CreateSessionRequest{
		Role: "SRE", Experience: "5", TopicsToFocus: "Kubernetes",
	})
	require.NoError(t, err)

	err = svc.DeleteSession(context.Background(), created.ID, 2)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	require.NoError(t, svc.DeleteSession(context.Background(), created.ID, 1))
	assert.Equal(t, []string{created.ID}, repo.deleted)

	err = svc.DeleteSession(context.Background(), created.ID, 1)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}
