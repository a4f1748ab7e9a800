package handlers

import (
	"math"
	"net/http"
	"strings"

	"quiz_app_backend/models"
	"quiz_app_backend/quiz"
	"quiz_app_backend/store"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

const evaluateRequestSchema = `{
  "type": "object",
  "properties": {
    "questionId": {"type": "integer", "minimum": 1},
    "answer": {"type": "string", "minLength": 1}
  },
  "required": ["questionId", "answer"]
}`

var evaluateSchema = mustSchema(evaluateRequestSchema)

func mustSchema(source string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
	if err != nil {
		panic(err)
	}
	return schema
}

// maxQuestionID bounds ids decoded from JSON numbers; floats above it no
// longer hold every integer exactly.
const maxQuestionID = 1 << 53

// evaluateBody is the wire shape of an evaluation request. questionId is
// decoded as a number so integral values such as 1.0 are accepted; the
// schema has already rejected fractions.
type evaluateBody struct {
	QuestionID float64 `json:"questionId" binding:"required,min=1"`
	Answer     string  `json:"answer" binding:"required"`
}

type EvaluationHandler struct {
	store *store.Store
}

func NewEvaluationHandler(s *store.Store) *EvaluationHandler {
	return &EvaluationHandler{store: s}
}

func (h *EvaluationHandler) Evaluate(c *gin.Context) {
	req, err := bindEvaluateRequest(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	question, err := h.store.GetQuestion(c.Request.Context(), req.QuestionID)
	if err != nil {
		respondStoreError(c, err, "Question not found", "Failed to evaluate the answer")
		return
	}

	verdict, err := quiz.Evaluate(question, req.Answer)
	if errors.Is(err, quiz.ErrAnswerNotAnOption) {
		respondError(c, http.StatusBadRequest, "Answer is not among the valid options")
		return
	}
	if err != nil {
		glog.Errorf("Error evaluating question %d: %v", req.QuestionID, err)
		respondError(c, http.StatusInternalServerError, "Failed to evaluate the answer")
		return
	}

	glog.V(2).Infof("Evaluated question %d: correct=%t", verdict.QuestionID, verdict.IsCorrect)
	c.JSON(http.StatusOK, models.EvaluateResponse{Success: true, Data: verdict})
}

// bindEvaluateRequest checks the raw body against the request schema before
// decoding it, so wrong JSON types are reported as such instead of as
// decoder errors.
func bindEvaluateRequest(c *gin.Context) (models.EvaluateRequest, error) {
	var req models.EvaluateRequest

	body, err := c.GetRawData()
	if err != nil {
		return req, errors.New("Failed to read request body")
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return req, errors.New("questionId and answer are required")
	}

	result, err := evaluateSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return req, errors.New("Request body must be valid JSON")
	}
	if !result.Valid() {
		return req, schemaError(result.Errors())
	}

	var wire evaluateBody
	if err := binding.JSON.BindBody(body, &wire); err != nil {
		return req, errors.New("questionId must be an integer and answer must be a string")
	}
	if wire.QuestionID != math.Trunc(wire.QuestionID) || wire.QuestionID > maxQuestionID {
		return req, errors.New("questionId must be an integer")
	}
	req.QuestionID = int(wire.QuestionID)
	req.Answer = wire.Answer
	return req, nil
}

func schemaError(resultErrors []gojsonschema.ResultError) error {
	parts := make([]string, 0, len(resultErrors))
	for _, re := range resultErrors {
		parts = append(parts, re.String())
	}
	return errors.New("Invalid request: " + strings.Join(parts, "; "))
}
