package controller

import (
	"quiz_master_backend/internal/service"
	"quiz_master_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Service     *service.AnalyticsService
	UserService *service.UserService
}

func NewAnalyticsController(svc *service.AnalyticsService, userSvc *service.UserService) *AnalyticsController {
	return &AnalyticsController{
		Service:     svc,
		UserService: userSvc,
	}
}

// ListUsers godoc
// @Summary 管理端用户列表
// @Tags 管理端报表
// @Produce json
// @Security ApiKeyAuth
// @Param search query string false "按姓名模糊检索"
// @Success 200 {object} util.Response
// @Router /api/admin/users [get]
func (c *AnalyticsController) ListUsers(ctx *gin.Context) {
	users, err := c.UserService.SearchUsers(ctx.Query("search"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, users)
}

// GetUserProgress godoc
// @Summary 用户进度报表
// @Description 进度与用户、科目、测验联查的明细
// @Tags 管理端报表
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/user_progress [get]
func (c *AnalyticsController) GetUserProgress(ctx *gin.Context) {
	rows, err := c.Service.GetUserProgress()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, rows)
}

// GetProgressChartData godoc
// @Summary 进度图表数据
// @Tags 管理端报表
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/user_progress_data [get]
func (c *AnalyticsController) GetProgressChartData(ctx *gin.Context) {
	data, err := c.Service.GetProgressChartData()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, data)
}

// GetPerformanceChartData godoc
// @Summary 用户平均分图表数据
// @Tags 管理端报表
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/user_performance_data [get]
func (c *AnalyticsController) GetPerformanceChartData(ctx *gin.Context) {
	data, err := c.Service.GetPerformanceChartData()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, data)
}
