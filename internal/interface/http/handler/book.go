package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/xiebiao/campus-bookstore/internal/application/catalog"
	"github.com/xiebiao/campus-bookstore/internal/interface/http/dto"
	"github.com/xiebiao/campus-bookstore/pkg/response"
)

// BookHandler 图书目录HTTP处理器
type BookHandler struct {
	searchBooksUseCase     *appcatalog.SearchBooksUseCase
	getBookUseCase         *appcatalog.GetBookUseCase
	addBookUseCase         *appcatalog.AddBookUseCase
	updateBookUseCase      *appcatalog.UpdateBookUseCase
	createAuthorUseCase    *appcatalog.CreateAuthorUseCase
	listAuthorsUseCase     *appcatalog.ListAuthorsUseCase
	createPublisherUseCase *appcatalog.CreatePublisherUseCase
	listPublishersUseCase  *appcatalog.ListPublishersUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	searchBooksUseCase *appcatalog.SearchBooksUseCase,
	getBookUseCase *appcatalog.GetBookUseCase,
	addBookUseCase *appcatalog.AddBookUseCase,
	updateBookUseCase *appcatalog.UpdateBookUseCase,
	createAuthorUseCase *appcatalog.CreateAuthorUseCase,
	listAuthorsUseCase *appcatalog.ListAuthorsUseCase,
	createPublisherUseCase *appcatalog.CreatePublisherUseCase,
	listPublishersUseCase *appcatalog.ListPublishersUseCase,
) *BookHandler {
	return &BookHandler{
		searchBooksUseCase:     searchBooksUseCase,
		getBookUseCase:         getBookUseCase,
		addBookUseCase:         addBookUseCase,
		updateBookUseCase:      updateBookUseCase,
		createAuthorUseCase:    createAuthorUseCase,
		listAuthorsUseCase:     listAuthorsUseCase,
		createPublisherUseCase: createPublisherUseCase,
		listPublishersUseCase:  listPublishersUseCase,
	}
}

// Search 图书搜索
// @Summary      图书搜索
// @Description  标题/作者/出版社模糊匹配,分类和ISBN精确匹配,条件AND组合
// @Tags         图书
// @Produce      json
// @Param        title query string false "标题关键词"
// @Param        category query string false "分类" Enums(Science, Art, Religion, History, Geography)
// @Param        isbn query string false "ISBN"
// @Param        author query string false "作者关键词"
// @Param        publisher query string false "出版社关键词"
// @Param        page query int false "页码"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response "图书列表"
// @Router       /api/v1/books/search [get]
func (h *BookHandler) Search(c *gin.Context) {
	var req dto.SearchBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.searchBooksUseCase.Execute(c.Request.Context(), appcatalog.SearchBooksRequest{
		Title:     req.Title,
		Category:  req.Category,
		ISBN:      req.ISBN,
		Author:    req.Author,
		Publisher: req.Publisher,
		Page:      req.Page,
		PageSize:  req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Get 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        isbn path string true "ISBN"
// @Success      200 {object} response.Response "图书详情"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{isbn} [get]
func (h *BookHandler) Get(c *gin.Context) {
	result, err := h.getBookUseCase.Execute(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Add 新增图书(管理员)
// @Summary      新增图书
// @Tags         管理员
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddBookRequest true "图书信息"
// @Success      200 {object} response.Response "新增成功"
// @Failure      400 {object} response.Response "参数错误或ISBN已存在"
// @Router       /api/v1/admin/books [post]
func (h *BookHandler) Add(c *gin.Context) {
	var req dto.AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.addBookUseCase.Execute(c.Request.Context(), appcatalog.AddBookRequest{
		ISBN:        req.ISBN,
		Title:       req.Title,
		PubYear:     req.PubYear,
		Price:       req.Price,
		Stock:       req.Stock,
		Threshold:   req.Threshold,
		Category:    req.Category,
		PublisherID: req.PublisherID,
		AuthorIDs:   req.AuthorIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Update 更新图书(管理员)
// @Summary      更新图书
// @Description  部分更新:未提供的字段保持不变,任一字段非法则整体不执行
// @Tags         管理员
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        isbn path string true "ISBN"
// @Param        request body dto.UpdateBookRequest true "待更新字段"
// @Success      200 {object} response.Response "更新成功"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/admin/books/{isbn} [put]
func (h *BookHandler) Update(c *gin.Context) {
	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateBookUseCase.Execute(c.Request.Context(), c.Param("isbn"), appcatalog.UpdateBookRequest{
		Title:       req.Title,
		PubYear:     req.PubYear,
		Price:       req.Price,
		Stock:       req.Stock,
		Threshold:   req.Threshold,
		Category:    req.Category,
		PublisherID: req.PublisherID,
		AuthorIDs:   req.AuthorIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CreateAuthor 创建作者(管理员)
// @Summary      创建作者
// @Tags         管理员
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateAuthorRequest true "作者信息"
// @Success      200 {object} response.Response "创建成功"
// @Router       /api/v1/admin/authors [post]
func (h *BookHandler) CreateAuthor(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.createAuthorUseCase.Execute(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListAuthors 作者列表(管理员)
// @Summary      作者列表
// @Tags         管理员
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response "作者列表"
// @Router       /api/v1/admin/authors [get]
func (h *BookHandler) ListAuthors(c *gin.Context) {
	result, err := h.listAuthorsUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CreatePublisher 创建出版社(管理员)
// @Summary      创建出版社
// @Tags         管理员
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreatePublisherRequest true "出版社信息"
// @Success      200 {object} response.Response "创建成功"
// @Router       /api/v1/admin/publishers [post]
func (h *BookHandler) CreatePublisher(c *gin.Context) {
	var req dto.CreatePublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.createPublisherUseCase.Execute(c.Request.Context(), appcatalog.CreatePublisherRequest{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListPublishers 出版社列表(管理员)
// @Summary      出版社列表
// @Tags         管理员
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response "出版社列表"
// @Router       /api/v1/admin/publishers [get]
func (h *BookHandler) ListPublishers(c *gin.Context) {
	result, err := h.listPublishersUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
