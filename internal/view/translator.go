package view

import (
	"errors"
	"fmt"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
)

var enMessages = map[string]string{
	"customer_account_bridge.sections.commerce_customers": "Commerce Customers",
	"customer_account_bridge.customer.name":               "Name",
	"customer_account_bridge.customer.lifetime":           "Lifetime sales value",
	"customer_account_bridge.customer.internal_rating":    "Internal rating",
	"customer_account_bridge.customer.children":           "Child customers",
}

type translator struct {
	trans ut.Translator
}

// NewTranslator builds english translator with view messages
func NewTranslator() (Translator, error) {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)

	trans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, errors.New("en translations are missing")
	}

	for key, text := range enMessages {
		if err := trans.Add(key, text, false); err != nil {
			return nil, fmt.Errorf("failed to register translation %s - %w", key, err)
		}
	}
	return &translator{trans: trans}, nil
}

// Trans returns key itself when translation is missing
func (t *translator) Trans(key string) string {
	msg, err := t.trans.T(key)
	if err != nil {
		return key
	}
	return msg
}
