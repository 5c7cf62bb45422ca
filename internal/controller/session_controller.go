package controller

import (
	"errors"

	"quiz_master_backend/internal/model"
	"quiz_master_backend/internal/service"
	"quiz_master_backend/internal/util"
	"quiz_master_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	Service *service.SessionService
}

func NewSessionController(svc *service.SessionService) *SessionController {
	return &SessionController{Service: svc}
}

// StartQuiz godoc
// @Summary 开始答题
// @Description 返回测验的题目与选项，不包含答案
// @Tags 答题
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path int true "测验ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "测验不存在"
// @Router /api/user/start_quiz/{quizId} [get]
func (c *SessionController) StartQuiz(ctx *gin.Context) {
	quizID, ok := util.ParamUint(ctx, "quizId")
	if !ok {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}

	view, err := c.Service.StartQuiz(quizID)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, view)
}

// swagger:model SubmitQuizRequest
type SubmitQuizRequest struct {
	// 题目ID -> 所选选项(1-4)，null 或缺失表示未作答
	Answers model.AnswerSheet `json:"answers"`
}

// SubmitQuiz godoc
// @Summary 提交答卷
// @Description 判分并保存进度；同一测验重复提交会覆盖上一次的成绩
// @Tags 答题
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path int true "测验ID"
// @Param body body SubmitQuizRequest true "答卷"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "测验不存在"
// @Router /api/user/submit_quiz/{quizId} [post]
func (c *SessionController) SubmitQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	quizID, ok := util.ParamUint(ctx, "quizId")
	if !ok {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}

	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.Service.SubmitQuiz(user.UserID, quizID, req.Answers)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.QuizSubmissions.Inc()

	util.Success(ctx, gin.H{
		"message": "提交成功，成绩已更新",
		"score":   progress.Score,
	})
}

// ViewQuiz godoc
// @Summary 复盘已完成的测验
// @Description 展示每道题的题干、用户所选选项与正确选项
// @Tags 答题
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path int true "测验ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "测验不存在"
// @Failure 409 {object} util.Response "尚未完成该测验"
// @Router /api/user/view_quiz/{quizId} [get]
func (c *SessionController) ViewQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	quizID, ok := util.ParamUint(ctx, "quizId")
	if !ok {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}

	review, err := c.Service.ReviewQuiz(user.UserID, quizID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuizNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrQuizNotCompleted):
			util.Error(ctx, 409, "尚未完成该测验")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, review)
}
