package controller

import (
	"errors"

	"quiz_master_backend/internal/service"
	"quiz_master_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	Service *service.ContentService
}

func NewContentController(svc *service.ContentService) *ContentController {
	return &ContentController{Service: svc}
}

func contentError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrSubjectNotFound), errors.Is(err, util.ErrChapterNotFound):
		util.NotFound(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

// CreateSubject godoc
// @Summary 创建科目
// @Tags 内容管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.SubjectRequest true "科目信息"
// @Success 201 {object} util.Response
// @Router /api/admin/subjects [post]
func (c *ContentController) CreateSubject(ctx *gin.Context) {
	var req service.SubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subject, err := c.Service.CreateSubject(req)
	if err != nil {
		contentError(ctx, err)
		return
	}

	util.Created(ctx, subject)
}

// ListSubjects godoc
// @Summary 获取科目列表
// @Tags 内容管理
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/subjects [get]
func (c *ContentController) ListSubjects(ctx *gin.Context) {
	subjects, err := c.Service.ListSubjects()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, subjects)
}

// UpdateSubject godoc
// @Summary 编辑科目
// @Tags 内容管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "科目ID"
// @Param body body service.SubjectRequest true "科目信息"
// @Success 200 {object} util.Response
// @Router /api/admin/subjects/{id} [put]
func (c *ContentController) UpdateSubject(ctx *gin.Context) {
	id, ok := util.ParamUint(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.SubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subject, err := c.Service.UpdateSubject(id, req)
	if err != nil {
		contentError(ctx, err)
		return
	}

	util.Success(ctx, subject)
}

// DeleteSubject godoc
// @Summary 删除科目
// @Description 级联删除该科目下的章节、测验、题目及答题进度
// @Tags 内容管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "科目ID"
// @Success 200 {object} util.Response
// @Router /api/admin/subjects/{id} [delete]
func (c *ContentController) DeleteSubject(ctx *gin.Context) {
	id, ok := util.ParamUint(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.Service.DeleteSubject(id); err != nil {
		contentError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}

// CreateChapter godoc
// @Summary 在科目下创建章节
// @Tags 内容管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param subjectId path int true "科目ID"
// @Param body body service.ChapterRequest true "章节信息"
// @Success 201 {object} util.Response
// @Router /api/admin/subjects/{subjectId}/chapters [post]
func (c *ContentController) CreateChapter(ctx *gin.Context) {
	subjectID, ok := util.ParamUint(ctx, "subjectId")
	if !ok {
		util.BadRequest(ctx, "invalid subject id")
		return
	}

	var req service.ChapterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	chapter, err := c.Service.CreateChapter(subjectID, req)
	if err != nil {
		contentError(ctx, err)
		return
	}

	util.Created(ctx, chapter)
}

// ListChapters godoc
// @Summary 获取科目下的章节列表
// @Tags 内容管理
// @Produce json
// @Security ApiKeyAuth
// @Param subjectId path int true "科目ID"
// @Success 200 {object} util.Response
// @Router /api/admin/subjects/{subjectId}/chapters [get]
func (c *ContentController) ListChapters(ctx *gin.Context) {
	subjectID, ok := util.ParamUint(ctx, "subjectId")
	if !ok {
		util.BadRequest(ctx, "invalid subject id")
		return
	}

	chapters, err := c.Service.ListChapters(subjectID)
	if err != nil {
		contentError(ctx, err)
		return
	}

	util.Success(ctx, chapters)
}

// UpdateChapter godoc
// @Summary 编辑章节
// @Tags 内容管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "章节ID"
// @Param body body service.ChapterRequest true "章节信息"
// @Success 200 {object} util.Response
// @Router /api/admin/chapters/{id} [put]
func (c *ContentController) UpdateChapter(ctx *gin.Context) {
	id, ok := util.ParamUint(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.ChapterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	chapter, err := c.Service.UpdateChapter(id, req)
	if err != nil {
		contentError(ctx, err)
		return
	}

	util.Success(ctx, chapter)
}

// DeleteChapter godoc
// @Summary 删除章节
// @Description 级联删除该章节下的测验、题目及答题进度
// @Tags 内容管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "章节ID"
// @Success 200 {object} util.Response
// @Router /api/admin/chapters/{id} [delete]
func (c *ContentController) DeleteChapter(ctx *gin.Context) {
	id, ok := util.ParamUint(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.Service.DeleteChapter(id); err != nil {
		contentError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}
