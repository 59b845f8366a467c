package handlers

import (
	"context"
	"net/http"

	"github.com/everydayventures/website/internal/api/constants"
	"github.com/everydayventures/website/internal/api/dto/common"
	"github.com/everydayventures/website/internal/api/dto/v1/contact"
	"github.com/everydayventures/website/internal/api/middleware"
	"github.com/everydayventures/website/internal/api/validation"
	"github.com/everydayventures/website/internal/logging"
	"github.com/everydayventures/website/internal/models"
	"github.com/everydayventures/website/internal/service"
	"github.com/everydayventures/website/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Messages shown to visitors
const (
	MessageReceived     = "Thank you! Your message has been received."
	MessageSent         = "Thanks for reaching out! We will be in touch shortly."
	MessageInvalid      = "Please correct the highlighted fields and try again."
	MessageUnreadable   = "We could not read your submission. Please try again."
	upstreamServiceName = "MailChannels error"
)

type ContactHandler struct {
	mailer   service.Mailer
	settings models.MailSettings
	validate *validator.Validate
	logger   *logging.Logger
}

func NewContactHandler(mailer service.Mailer, settings models.MailSettings, logger *logging.Logger) *ContactHandler {
	return &ContactHandler{
		mailer:   mailer,
		settings: settings,
		validate: validation.New(),
		logger:   logger,
	}
}

// Submit validates an inquiry and relays it by email
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contact.ContactRequest
	if err := c.ShouldBindWith(&req, bodyBinding(c)); err != nil {
		utils.HandleAPIError(c, err, http.StatusBadRequest, common.ErrCodeBadRequest, MessageUnreadable,
			map[string]string{"form": "The form data could not be parsed."})
		return
	}
	req.Sanitize()

	// Bots get the same answer as people so they have no signal to adapt to
	if req.IsSpam() {
		h.logger.Info("Dropped honeypot submission from %s (request %s)",
			utils.GetRealIP(c), c.GetString(constants.ContextKeyRequestID))
		utils.HandleMessage(c, MessageReceived)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		utils.HandleAPIError(c, nil, http.StatusBadRequest, common.ErrCodeValidation, MessageInvalid,
			validation.FormatValidationError(err))
		return
	}

	msg := models.BuildInquiryEmail(req.ToInquiry(), h.settings)

	// A visitor closing the tab must not abort a half-sent email
	ctx := context.WithoutCancel(c.Request.Context())
	if err := h.mailer.Send(ctx, msg); err != nil {
		utils.HandleAPIError(c, err, http.StatusBadGateway, common.ErrCodeBadGateway, h.fallbackMessage(),
			map[string]string{"service": upstreamServiceName})
		return
	}

	utils.HandleMessage(c, MessageSent)
}

// Preflight answers CORS preflight requests for the contact endpoint
func (h *ContactHandler) Preflight(c *gin.Context) {
	middleware.PreflightHeaders(c)
	utils.HandleNoContent(c)
}

// bodyBinding reads fields from the request body only; query parameters never
// fill in a submission
func bodyBinding(c *gin.Context) binding.Binding {
	if c.ContentType() == binding.MIMEMultipartPOSTForm {
		return binding.FormMultipart
	}
	return binding.FormPost
}

func (h *ContactHandler) fallbackMessage() string {
	return "We could not send your message right now. Please email " +
		h.settings.Recipient().Email + " directly."
}
