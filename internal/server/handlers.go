package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fift2939-create/ather1/internal/domain"
	"github.com/fift2939-create/ather1/internal/drafting"
	"github.com/fift2939-create/ather1/internal/export"
	"github.com/fift2939-create/ather1/internal/llm"
	"github.com/fift2939-create/ather1/internal/locale"
)

const (
	contentTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	contentTypeXlsx = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ProposalHandler serves the stateless proposal API: every request carries
// the full proposal it operates on.
type ProposalHandler struct {
	cfg     llm.Config
	drafter drafting.DrafterFactory
}

func NewProposalHandler(cfg llm.Config, drafter drafting.DrafterFactory) *ProposalHandler {
	return &ProposalHandler{cfg: cfg, drafter: drafter}
}

type configResponse struct {
	Provider             llm.Provider                 `json:"provider"`
	Models               map[llm.TaskType]string      `json:"models"`
	Language             locale.Language              `json:"language"`
	Direction            locale.Direction             `json:"direction"`
	CredentialConfigured bool                         `json:"credentialConfigured"`
	SetupSteps           []string                     `json:"setupSteps,omitempty"`
	DefaultCategories    map[locale.Language][]string `json:"defaultCategories"`
	BudgetFields         []domain.BudgetField         `json:"budgetFields"`
}

// GetConfig describes the server configuration without exposing the
// credential.
func (h *ProposalHandler) GetConfig(c *gin.Context) {
	lang, ok := h.language(c, c.Query("language"))
	if !ok {
		return
	}
	resp := configResponse{
		Provider: h.cfg.Provider,
		Models: map[llm.TaskType]string{
			llm.TaskIdeas:    h.cfg.ModelFor(llm.TaskIdeas),
			llm.TaskProposal: h.cfg.ModelFor(llm.TaskProposal),
		},
		Language:             lang,
		Direction:            lang.Direction(),
		CredentialConfigured: h.cfg.HasCredential(),
		DefaultCategories: map[locale.Language][]string{
			locale.Arabic:  locale.Arabic.DefaultCategories(),
			locale.English: locale.English.DefaultCategories(),
		},
		BudgetFields: domain.BudgetFields(),
	}
	if !resp.CredentialConfigured {
		resp.SetupSteps = lang.Labels().SetupSteps
	}
	RespondOK(c, resp)
}

type ideasRequest struct {
	Vision   string `json:"vision"`
	Country  string `json:"country"`
	Language string `json:"language"`
}

type ideasResponse struct {
	Ideas []domain.ProjectIdea `json:"ideas"`
}

func (h *ProposalHandler) GenerateIdeas(c *gin.Context) {
	var req ideasRequest
	if !bind(c, &req) {
		return
	}
	lang, ok := h.language(c, req.Language)
	if !ok {
		return
	}
	d, ok := h.drafters(c, lang)
	if !ok {
		return
	}

	ideas, err := d.Ideas.GenerateIdeas(c.Request.Context(), req.Vision, req.Country, lang)
	if err != nil {
		respondDraftingError(c, lang, err)
		return
	}
	RespondOK(c, ideasResponse{Ideas: ideas})
}

type proposalRequest struct {
	Idea       domain.ProjectIdea `json:"idea"`
	Country    string             `json:"country"`
	Language   string             `json:"language"`
	Categories []string           `json:"categories"`
}

type proposalResponse struct {
	Proposal   domain.ProjectProposal `json:"proposal"`
	GrandTotal float64                `json:"grandTotal"`
}

func (h *ProposalHandler) DraftProposal(c *gin.Context) {
	var req proposalRequest
	if !bind(c, &req) {
		return
	}
	lang, ok := h.language(c, req.Language)
	if !ok {
		return
	}
	d, ok := h.drafters(c, lang)
	if !ok {
		return
	}

	p, err := d.Proposals.DraftProposal(c.Request.Context(), req.Idea, req.Country, lang, req.Categories)
	if err != nil {
		respondDraftingError(c, lang, err)
		return
	}
	RespondOK(c, proposalResponse{Proposal: *p, GrandTotal: p.GrandTotal()})
}

type budgetEditRequest struct {
	Proposal domain.ProjectProposal `json:"proposal"`
	Index    *int                   `json:"index" binding:"required"`
	Field    string                 `json:"field" binding:"required"`
	Value    string                 `json:"value"`
}

// UpdateBudgetLine applies one field edit and returns the new proposal.
func (h *ProposalHandler) UpdateBudgetLine(c *gin.Context) {
	var req budgetEditRequest
	if !bind(c, &req) {
		return
	}
	field, err := domain.ParseBudgetField(req.Field)
	if err != nil {
		RespondError(c, http.StatusBadRequest, CodeValidation, err)
		return
	}
	p, err := domain.UpdateLineItem(req.Proposal, *req.Index, field, req.Value)
	if err != nil {
		RespondError(c, http.StatusBadRequest, CodeValidation, err)
		return
	}
	RespondOK(c, proposalResponse{Proposal: p, GrandTotal: p.GrandTotal()})
}

type groupsRequest struct {
	Proposal domain.ProjectProposal `json:"proposal"`
	Language string                 `json:"language"`
}

type groupLine struct {
	Index int                   `json:"index"`
	Item  domain.BudgetLineItem `json:"item"`
}

type groupView struct {
	Category string      `json:"category"`
	Subtotal float64     `json:"subtotal"`
	Lines    []groupLine `json:"lines"`
}

type groupsResponse struct {
	Groups     []groupView `json:"groups"`
	GrandTotal float64     `json:"grandTotal"`
}

// BudgetGroups projects the budget into category groups for display.
func (h *ProposalHandler) BudgetGroups(c *gin.Context) {
	var req groupsRequest
	if !bind(c, &req) {
		return
	}
	lang, ok := h.language(c, req.Language)
	if !ok {
		return
	}

	groups := domain.GroupByCategory(req.Proposal.Budget, lang)
	resp := groupsResponse{Groups: make([]groupView, len(groups)), GrandTotal: req.Proposal.GrandTotal()}
	for i, g := range groups {
		v := groupView{Category: g.Category, Subtotal: g.Subtotal(), Lines: make([]groupLine, len(g.Lines))}
		for j, l := range g.Lines {
			v.Lines[j] = groupLine{Index: l.OriginalIndex, Item: l.Item}
		}
		resp.Groups[i] = v
	}
	RespondOK(c, resp)
}

type exportRequest struct {
	Proposal domain.ProjectProposal `json:"proposal"`
	Language string                 `json:"language"`
}

func (h *ProposalHandler) ExportDocument(c *gin.Context) {
	var req exportRequest
	if !bind(c, &req) {
		return
	}
	lang, ok := h.language(c, req.Language)
	if !ok {
		return
	}
	data, err := export.ToDocument(req.Proposal, lang)
	if err != nil {
		_ = c.Error(err)
		RespondError(c, http.StatusInternalServerError, CodeInternal, err)
		return
	}
	RespondFile(c, export.DocumentFileName(req.Proposal.Title), contentTypeDocx, data)
}

func (h *ProposalHandler) ExportSpreadsheet(c *gin.Context) {
	var req exportRequest
	if !bind(c, &req) {
		return
	}
	lang, ok := h.language(c, req.Language)
	if !ok {
		return
	}
	data, err := export.ToSpreadsheet(req.Proposal, lang)
	if err != nil {
		_ = c.Error(err)
		RespondError(c, http.StatusInternalServerError, CodeInternal, err)
		return
	}
	RespondFile(c, export.SpreadsheetFileName(req.Proposal.Title), contentTypeXlsx, data)
}

func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		RespondError(c, http.StatusBadRequest, CodeValidation, fmt.Errorf("invalid request: %w", err))
		return false
	}
	return true
}

// language resolves a request language, falling back to the configured one.
func (h *ProposalHandler) language(c *gin.Context, raw string) (locale.Language, bool) {
	if raw == "" {
		return h.cfg.Language, true
	}
	lang, err := locale.Parse(raw)
	if err != nil {
		RespondError(c, http.StatusBadRequest, CodeValidation, err)
		return "", false
	}
	return lang, true
}

// drafters builds the services for this request, honoring a credential
// sent in the X-Api-Key header.
func (h *ProposalHandler) drafters(c *gin.Context, lang locale.Language) (drafting.Drafters, bool) {
	cfg := h.cfg
	if key := c.GetHeader(headerAPIKey); key != "" {
		cfg = cfg.WithAPIKey(key)
	}
	if err := cfg.RequireCredential(lang); err != nil {
		respondDraftingError(c, lang, err)
		return drafting.Drafters{}, false
	}
	d, err := h.drafter(cfg)
	if err != nil {
		_ = c.Error(err)
		RespondError(c, http.StatusInternalServerError, CodeInternal, err)
		return drafting.Drafters{}, false
	}
	return d, true
}

func respondDraftingError(c *gin.Context, lang locale.Language, err error) {
	_ = c.Error(err)

	var ve *domain.ValidationError
	var ce *llm.ConfigurationError
	var ge *drafting.GenerationError
	switch {
	case errors.As(err, &ve):
		RespondError(c, http.StatusBadRequest, CodeValidation, err)
	case errors.As(err, &ce):
		c.JSON(http.StatusServiceUnavailable, ErrorEnvelope{Error: APIError{
			Message: ce.Title,
			Code:    CodeConfiguration,
			Steps:   ce.Steps,
		}})
	case errors.As(err, &ge):
		c.JSON(http.StatusBadGateway, ErrorEnvelope{Error: APIError{
			Message: drafting.Describe(ge, lang),
			Code:    CodeGeneration,
		}})
	case errors.Is(err, context.Canceled):
		c.Status(499)
	default:
		RespondError(c, http.StatusInternalServerError, CodeInternal, err)
	}
}
