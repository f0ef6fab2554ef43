// Package notification renders acknowledgment letters and delivers them.
package notification

import (
	"bytes"
	_ "embed"
	"fmt"
	"html"
	"html/template"
	"log/slog"

	"placeorder/internal/core/domain/model/order"
	"placeorder/internal/core/domain/services"
)

//go:embed templates/acknowledgment.html.tmpl
var acknowledgmentTemplate string

type letterLine struct {
	OrderLineID string
	ProductCode string
	Quantity    string
	Price       string
}

type letterData struct {
	FirstName      string
	LastName       string
	OrderID        string
	ShippingMethod string
	ShippingCost   string
	AmountToBill   string
	Lines          []letterLine
	Comments       []string
}

// TemplateRenderer renders the acknowledgment letter from an HTML template.
// Rendering never fails: if the template errors, the letter degrades to a
// plain one-paragraph note and the failure is logged.
type TemplateRenderer struct {
	tmpl   *template.Template
	logger *slog.Logger
}

// NewTemplateRenderer parses the embedded letter template.
func NewTemplateRenderer(logger *slog.Logger) (*TemplateRenderer, error) {
	return NewTemplateRendererFrom(acknowledgmentTemplate, logger)
}

// NewTemplateRendererFrom parses text as the letter template.
func NewTemplateRendererFrom(text string, logger *slog.Logger) (*TemplateRenderer, error) {
	tmpl, err := template.New("acknowledgment").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse acknowledgment template: %w", err)
	}
	return &TemplateRenderer{
		tmpl:   tmpl,
		logger: logger.With("component", "letter_renderer"),
	}, nil
}

func (r *TemplateRenderer) Render(o order.PricedOrderWithShippingMethod) order.HTMLString {
	data := toLetterData(o)

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		r.logger.Error("acknowledgment template failed, sending plain letter",
			"order_id", data.OrderID,
			"error", err,
		)
		return plainLetter(data)
	}

	return order.HTMLString(buf.String())
}

func toLetterData(o order.PricedOrderWithShippingMethod) letterData {
	priced := o.PricedOrder()
	name := priced.CustomerInfo().Name()

	data := letterData{
		FirstName:      name.FirstName.Value(),
		LastName:       name.LastName.Value(),
		OrderID:        priced.OrderID().Value(),
		ShippingMethod: o.ShippingInfo().Method().String(),
		ShippingCost:   o.ShippingInfo().Cost().String(),
		AmountToBill:   priced.AmountToBill().String(),
	}

	for _, line := range priced.Lines() {
		switch l := line.(type) {
		case order.ProductLine:
			data.Lines = append(data.Lines, letterLine{
				OrderLineID: l.OrderLineID().Value(),
				ProductCode: l.ProductCode().Value(),
				Quantity:    services.FormatQuantity(l.Quantity()),
				Price:       l.LinePrice().String(),
			})
		case order.CommentLine:
			data.Comments = append(data.Comments, l.Text())
		default:
			panic(fmt.Sprintf("unexpected priced order line %T", line))
		}
	}

	return data
}

func plainLetter(data letterData) order.HTMLString {
	return order.HTMLString(fmt.Sprintf(
		"<p>Dear %s %s, thank you for your order %s. Amount to bill: %s.</p>",
		html.EscapeString(data.FirstName),
		html.EscapeString(data.LastName),
		html.EscapeString(data.OrderID),
		data.AmountToBill,
	))
}
