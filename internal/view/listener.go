package view

import (
	"context"
	"strings"
)

const (
	// CustomerSectionTemplate is name of template rendered for customer section
	CustomerSectionTemplate = "customer-section.html"
	// CustomerSectionNameConfigKey is config key holding translation key of section title
	CustomerSectionNameConfigKey = "customer_account_bridge.commerce_customers_section_name"
)

const blankCutset = " \t\n\r\x00\x0B"

// CustomerSectionListener adds customer section to account view page
type CustomerSectionListener struct {
	requests   RequestStack
	referencer EntityReferencer
	config     ConfigStore
	translator Translator
}

// NewCustomerSectionListener builds CustomerSectionListener
func NewCustomerSectionListener(requests RequestStack, referencer EntityReferencer, config ConfigStore, translator Translator) *CustomerSectionListener {
	return &CustomerSectionListener{
		requests:   requests,
		referencer: referencer,
		config:     config,
		translator: translator,
	}
}

// OnView renders customer section and appends it to scroll data if it isn't blank.
// Missing or malformed id in request is not an error, event is left untouched.
func (l *CustomerSectionListener) OnView(ctx context.Context, e *BeforeListRenderEvent) error {
	entity := l.entityFromRequest(ctx)
	if entity == nil {
		return nil
	}

	html, err := e.Environment.Render(CustomerSectionTemplate, map[string]any{"Entity": entity})
	if err != nil {
		return err
	}

	if strings.Trim(html, blankCutset) == "" {
		return nil
	}

	title := l.translator.Trans(l.config.Get(CustomerSectionNameConfigKey))

	blockID := e.ScrollData.AddBlock(title)
	subBlockID, err := e.ScrollData.AddSubBlock(blockID)
	if err != nil {
		return err
	}
	return e.ScrollData.AddSubBlockData(blockID, subBlockID, html)
}

func (l *CustomerSectionListener) entityFromRequest(ctx context.Context) any {
	r := l.requests.CurrentRequest(ctx)
	if r == nil {
		return nil
	}

	raw, ok := r.Param("id")
	if !ok {
		return nil
	}

	id, ok := parseID(raw)
	if !ok {
		return nil
	}

	return l.referencer.Reference(ctx, id)
}
