package controller

import (
	"context"
	"net/http"
	"testing"

	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubQuestionStore struct {
	questions map[uint]*model.Question
}

func (s *stubQuestionStore) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	q, ok := s.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *q
	return &copied, nil
}

func (s *stubQuestionStore) CreateBatch(ctx context.Context, questions []*model.Question) error {
	for i, q := range questions {
		q.ID = uint(len(s.questions) + i + 1)
		s.questions[q.ID] = q
	}
	return nil
}

func (s *stubQuestionStore) Save(ctx context.Context, question *model.Question) error {
	copied := *question
	s.questions[question.ID] = &copied
	return nil
}

func (s *stubQuestionStore) SetExplanationIfEmpty(ctx context.Context, id uint, title, explanation string) (bool, error) {
	q, ok := s.questions[id]
	if !ok || q.Explanation != "" {
		return false, nil
	}
	q.ExplanationTitle = title
	q.Explanation = explanation
	return true, nil
}

type stubSessionStore struct {
	sessions map[string]*model.Session
}

func (s *stubSessionStore) FindByID(ctx context.Context, id string) (*model.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return sess, nil
}

func (s *stubSessionStore) Touch(ctx context.Context, id string) error { return nil }

type stubCompleter struct {
	reply string
	calls int
}

func (c *stubCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	c.calls++
	return c.reply, nil
}

func questionRouter(questions *stubQuestionStore, sessions *stubSessionStore, ai *stubCompleter) *gin.Engine {
	svc := service.NewQuestionService(questions, sessions, ai, nil)
	c := NewQuestionController(svc)

	r := gin.New()
	r.POST("/questions/add", c.AddQuestionsToSession)
	r.POST("/questions/explain", c.GetExplanation)
	r.PUT("/questions/:id/pin", c.TogglePin)
	r.PUT("/questions/:id/note", c.UpdateNote)
	return r
}

func testStores() (*stubQuestionStore, *stubSessionStore) {
	sess := &model.Session{Role: "Backend"}
	sess.ID = "sess-1"
	q := &model.Question{SessionID: "sess-1", Question: "What is a mutex?"}
	q.ID = 1
	return &stubQuestionStore{questions: map[uint]*model.Question{1: q}},
		&stubSessionStore{sessions: map[string]*model.Session{"sess-1": sess}}
}

func TestAddQuestionsHandler(t *testing.T) {
	questions, sessions := testStores()
	r := questionRouter(questions, sessions, &stubCompleter{})

	w := postJSON(t, r, "/questions/add",
		`{"sessionId": "sess-1", "questions": [{"question": "Q2?", "answer": "A2."}]}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"question":"Q2?"`)
}

func TestAddQuestionsInvalidInput(t *testing.T) {
	questions, sessions := testStores()
	r := questionRouter(questions, sessions, &stubCompleter{})

	for _, body := range []string{
		`{}`,
		`{"sessionId": "sess-1"}`,
		`{"questions": [{"question": "Q?"}]}`,
	} {
		w := postJSON(t, r, "/questions/add", body)
		assert.Equal(t, http.StatusNotFound, w.Code, "body: %s", body)
		assert.Equal(t, "Invalid input data", decodeResponse(t, w).Message)
	}
}

func TestAddQuestionsEmptyArray(t *testing.T) {
	questions, sessions := testStores()
	r := questionRouter(questions, sessions, &stubCompleter{})

	w := postJSON(t, r, "/questions/add", `{"sessionId": "sess-1", "questions": []}`)

	assert.Equal(t, http.StatusCreated, w.Code, "an empty array creates nothing but is not an error")
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestAddQuestionsUnknownSession(t *testing.T) {
	questions, sessions := testStores()
	r := questionRouter(questions, sessions, &stubCompleter{})

	w := postJSON(t, r, "/questions/add",
		`{"sessionId": "nope", "questions": [{"question": "Q?"}]}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Session not found", decodeResponse(t, w).Message)
}

func TestGetExplanationHandler(t *testing.T) {
	questions, sessions := testStores()
	ai := &stubCompleter{reply: `{"title": "Mutexes", "explanation": "A lock primitive."}`}
	r := questionRouter(questions, sessions, ai)

	w := postJSON(t, r, "/questions/explain", `{"questionId": 1}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"cached":false`)

	// Second request is served from the question record.
	w = postJSON(t, r, "/questions/explain", `{"questionId": 1}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"cached":true`)
	assert.Equal(t, 1, ai.calls)
}

func TestGetExplanationMissingID(t *testing.T) {
	questions, sessions := testStores()
	r := questionRouter(questions, sessions, &stubCompleter{})

	w := postJSON(t, r, "/questions/explain", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing questionId", decodeResponse(t, w).Message)
}

func TestGetExplanationUnknownQuestion(t *testing.T) {
	questions, sessions := testStores()
	r := questionRouter(questions, sessions, &stubCompleter{})

	w := postJSON(t, r, "/questions/explain", `{"questionId": 404}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Question not found", decodeResponse(t, w).Message)
}

func TestTogglePinHandler(t *testing.T) {
	questions, sessions := testStores()
	r := questionRouter(questions, sessions, &stubCompleter{})

	req := putJSON(t, r, "/questions/1/pin", "")
	assert.Equal(t, http.StatusOK, req.Code)
	assert.Contains(t, req.Body.String(), `"isPinned":true`)
	assert.Contains(t, req.Body.String(), `"success":true`)

	req = putJSON(t, r, "/questions/1/pin", "")
	require.Equal(t, http.StatusOK, req.Code)
	assert.Contains(t, req.Body.String(), `"isPinned":false`)
}

func TestTogglePinBadID(t *testing.T) {
	questions, sessions := testStores()
	r := questionRouter(questions, sessions, &stubCompleter{})

	w := putJSON(t, r, "/questions/abc/pin", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateNoteHandler(t *testing.T) {
	questions, sessions := testStores()
	r := questionRouter(questions, sessions, &stubCompleter{})

	w := putJSON(t, r, "/questions/1/note", `{"note": "revisit this"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"note":"revisit this"`)
}

func TestUpdateNoteUnknownQuestion(t *testing.T) {
	questions, sessions := testStores()
	r := questionRouter(questions, sessions, &stubCompleter{})

	w := putJSON(t, r, "/questions/404/note", `{"note": "x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Question not found", decodeResponse(t, w).Message)
}
