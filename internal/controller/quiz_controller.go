package controller

import (
	"errors"

	"quiz_master_backend/internal/service"
	"quiz_master_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(svc *service.QuizService) *QuizController {
	return &QuizController{Service: svc}
}

func quizError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrChapterNotFound),
		errors.Is(err, util.ErrQuizNotFound),
		errors.Is(err, util.ErrQuestionNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrInvalidDate):
		util.BadRequest(ctx, "日期格式错误，应为 YYYY-MM-DD")
	case errors.Is(err, util.ErrInvalidCorrectOption):
		util.BadRequest(ctx, "正确选项必须在 1-4 之间")
	default:
		util.LogInternalError(ctx, err)
	}
}

// CreateQuiz godoc
// @Summary 在章节下创建测验
// @Tags 测验管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param chapterId path int true "章节ID"
// @Param body body service.QuizRequest true "测验信息"
// @Success 201 {object} util.Response
// @Router /api/admin/chapters/{chapterId}/quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	chapterID, ok := util.ParamUint(ctx, "chapterId")
	if !ok {
		util.BadRequest(ctx, "invalid chapter id")
		return
	}

	var req service.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.Service.CreateQuiz(chapterID, req)
	if err != nil {
		quizError(ctx, err)
		return
	}

	util.Created(ctx, quiz)
}

// ListQuizzes godoc
// @Summary 获取章节下的测验列表
// @Tags 测验管理
// @Produce json
// @Security ApiKeyAuth
// @Param chapterId path int true "章节ID"
// @Success 200 {object} util.Response
// @Router /api/admin/chapters/{chapterId}/quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	chapterID, ok := util.ParamUint(ctx, "chapterId")
	if !ok {
		util.BadRequest(ctx, "invalid chapter id")
		return
	}

	quizzes, err := c.Service.ListQuizzes(chapterID)
	if err != nil {
		quizError(ctx, err)
		return
	}

	util.Success(ctx, quizzes)
}

// UpdateQuiz godoc
// @Summary 编辑测验
// @Tags 测验管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "测验ID"
// @Param body body service.QuizRequest true "测验信息"
// @Success 200 {object} util.Response
// @Router /api/admin/quizzes/{id} [put]
func (c *QuizController) UpdateQuiz(ctx *gin.Context) {
	id, ok := util.ParamUint(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.Service.UpdateQuiz(id, req)
	if err != nil {
		quizError(ctx, err)
		return
	}

	util.Success(ctx, quiz)
}

// DeleteQuiz godoc
// @Summary 删除测验
// @Description 级联删除该测验的题目及答题进度
// @Tags 测验管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "测验ID"
// @Success 200 {object} util.Response
// @Router /api/admin/quizzes/{id} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	id, ok := util.ParamUint(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.Service.DeleteQuiz(id); err != nil {
		quizError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}

// CreateQuestion godoc
// @Summary 为测验添加题目
// @Tags 测验管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path int true "测验ID"
// @Param body body service.QuestionRequest true "题目信息"
// @Success 201 {object} util.Response
// @Router /api/admin/quizzes/{quizId}/questions [post]
func (c *QuizController) CreateQuestion(ctx *gin.Context) {
	quizID, ok := util.ParamUint(ctx, "quizId")
	if !ok {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.Service.CreateQuestion(quizID, req)
	if err != nil {
		quizError(ctx, err)
		return
	}

	util.Created(ctx, question)
}

// ListQuestions godoc
// @Summary 获取测验题目列表
// @Tags 测验管理
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path int true "测验ID"
// @Success 200 {object} util.Response
// @Router /api/admin/quizzes/{quizId}/questions [get]
func (c *QuizController) ListQuestions(ctx *gin.Context) {
	quizID, ok := util.ParamUint(ctx, "quizId")
	if !ok {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}

	questions, err := c.Service.ListQuestions(quizID)
	if err != nil {
		quizError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

// UpdateQuestion godoc
// @Summary 编辑题目
// @Tags 测验管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Param body body service.QuestionRequest true "题目信息"
// @Success 200 {object} util.Response
// @Router /api/admin/questions/{id} [put]
func (c *QuizController) UpdateQuestion(ctx *gin.Context) {
	id, ok := util.ParamUint(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.Service.UpdateQuestion(id, req)
	if err != nil {
		quizError(ctx, err)
		return
	}

	util.Success(ctx, question)
}

// DeleteQuestion godoc
// @Summary 删除题目
// @Tags 测验管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response
// @Router /api/admin/questions/{id} [delete]
func (c *QuizController) DeleteQuestion(ctx *gin.Context) {
	id, ok := util.ParamUint(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.Service.DeleteQuestion(id); err != nil {
		quizError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}
