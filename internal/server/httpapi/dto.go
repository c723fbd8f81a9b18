package httpapi

import (
	"time"

	"github.com/avolkov/quizdeck/internal/server/models"
	"github.com/avolkov/quizdeck/internal/server/services"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int64  `json:"user_id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type testRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type testResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type testListResponse struct {
	Tests []testResponse `json:"tests"`
	Total int64          `json:"total"`
}

type questionRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Option1       string `json:"option_1"`
	Option2       string `json:"option_2"`
	Option3       string `json:"option_3"`
	Option4       string `json:"option_4"`
	CorrectAnswer int    `json:"correct_answer"`
}

type questionResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Option1       string    `json:"option_1"`
	Option2       string    `json:"option_2"`
	Option3       string    `json:"option_3"`
	Option4       string    `json:"option_4"`
	CorrectAnswer int       `json:"correct_answer"`
	TestID        int64     `json:"test_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// questionPublicResponse is the answer-hidden view of a question: the same
// row without correct_answer, for showing a question as a taker would see it.
type questionPublicResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Option1     string    `json:"option_1"`
	Option2     string    `json:"option_2"`
	Option3     string    `json:"option_3"`
	Option4     string    `json:"option_4"`
	TestID      int64     `json:"test_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type questionListResponse struct {
	Questions []questionResponse `json:"questions"`
	Total     int64              `json:"total"`
}

func toTestResponse(t *models.Test) testResponse {
	return testResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toQuestionResponse(q *models.Question) questionResponse {
	return questionResponse{
		ID:            q.ID,
		Title:         q.Title,
		Description:   q.Description,
		Option1:       q.Options[0],
		Option2:       q.Options[1],
		Option3:       q.Options[2],
		Option4:       q.Options[3],
		CorrectAnswer: q.CorrectAnswer,
		TestID:        q.TestID,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}

func toQuestionPublicResponse(q *models.Question) questionPublicResponse {
	return questionPublicResponse{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Option1:     q.Options[0],
		Option2:     q.Options[1],
		Option3:     q.Options[2],
		Option4:     q.Options[3],
		TestID:      q.TestID,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func (r questionRequest) toInput() services.QuestionInput {
	return services.QuestionInput{
		Title:         r.Title,
		Description:   r.Description,
		Options:       [4]string{r.Option1, r.Option2, r.Option3, r.Option4},
		CorrectAnswer: r.CorrectAnswer,
	}
}
