package request

import (
	"strings"

	"contractor_crm/internal/usecase"
)

// SendEstimateRequest drives the send endpoint. With dispatch left at its
// default the server emails the client itself; dispatch=false only prepares
// the document and hands the token back for an external mailer.
type SendEstimateRequest struct {
	RecipientEmail string   `json:"recipient_email" binding:"required"`
	RecipientName  string   `json:"recipient_name"`
	Subject        string   `json:"subject"`
	Message        string   `json:"message"`
	CC             []string `json:"cc"`
	SentBy         string   `json:"sent_by"`
	Dispatch       *bool    `json:"dispatch"`
}

func (r SendEstimateRequest) ToCommand() usecase.SendEstimateCommand {
	return usecase.SendEstimateCommand{
		RecipientEmail: strings.TrimSpace(r.RecipientEmail),
		RecipientName:  strings.TrimSpace(r.RecipientName),
		Subject:        strings.TrimSpace(r.Subject),
		Message:        r.Message,
		CC:             r.CC,
		SentBy:         strings.TrimSpace(r.SentBy),
	}
}

func (r SendEstimateRequest) DispatchRequested() bool {
	return r.Dispatch == nil || *r.Dispatch
}

type ConvertToInvoiceRequest struct {
	ModifiedBy string `json:"modified_by"`
}

type ClientDecisionRequest struct {
	Decision string `json:"decision" binding:"required"`
}

type ClientCommentRequest struct {
	AuthorName string `json:"author_name"`
	Message    string `json:"message" binding:"required"`
}
