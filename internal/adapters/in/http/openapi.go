package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"placeorder/internal/adapters/contracts"
	"placeorder/internal/core/domain/model/order"
	"placeorder/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openapiYAML []byte

// LoadOpenAPI parses and validates the embedded API description.
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(openapiYAML)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	return doc, nil
}

// placeOrderOperation is the operationId of POST /api/v1/orders.
const placeOrderOperation = "placeOrder"

// RequestValidator rejects requests that do not match the API description with
// 400 and a ValidationError body. Paths the description does not list (health,
// metrics, swagger) pass through unchecked. A rejected order submission counts
// as a ValidationError outcome in m, which may be nil.
func RequestValidator(doc *openapi3.T, m *metrics.ServerMetrics) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				var routeErr *routers.RouteError
				if errors.As(err, &routeErr) {
					return next(c)
				}
				return err
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				if m != nil && route.Operation != nil && route.Operation.OperationID == placeOrderOperation {
					m.OrdersPlaced.WithLabelValues(order.ValidationErrorCode).Inc()
				}
				return c.JSON(http.StatusBadRequest, contracts.PlaceOrderErrorDto{
					Code:    order.ValidationErrorCode,
					Message: requestErrorMessage(err),
				})
			}

			return next(c)
		}
	}, nil
}

func requestErrorMessage(err error) string {
	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		if requestErr.Parameter != nil {
			return fmt.Sprintf("parameter %q: %s", requestErr.Parameter.Name, requestErr.Reason)
		}
		if requestErr.Reason != "" {
			return "request body: " + requestErr.Reason
		}
	}
	return err.Error()
}

type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var registerSwagger sync.Once

// RegisterSwaggerDoc publishes doc to the swagger UI. Only the first call has
// an effect.
func RegisterSwaggerDoc(doc *openapi3.T) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode openapi document: %w", err)
	}

	registerSwagger.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: string(data)})
	})
	return nil
}
