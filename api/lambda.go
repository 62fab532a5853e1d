package api

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/bytedance/sonic"
	"github.com/nzai/stockwatch/constants"
	"github.com/nzai/stockwatch/quoter"
	"github.com/nzai/stockwatch/utils"
	"go.uber.org/zap"
)

// LambdaHandler serve stock quotes behind aws api gateway
type LambdaHandler struct {
	quoter *quoter.Quoter
}

// NewLambdaHandler create lambda handler
func NewLambdaHandler(q *quoter.Quoter) *LambdaHandler {
	return &LambdaHandler{quoter: q}
}

// Handle process api gateway proxy request
func (h LambdaHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	symbols := utils.ParseSymbols(request.QueryStringParameters["symbols"])
	if len(symbols) == 0 {
		return h.response(http.StatusBadRequest, ErrorResponse{Error: constants.NoSymbolsMessage})
	}

	return h.response(http.StatusOK, h.quoter.Quotes(ctx, symbols))
}

func (h LambdaHandler) response(code int, body any) (events.APIGatewayProxyResponse, error) {
	buffer, err := sonic.Marshal(body)
	if err != nil {
		zap.L().Error("marshal lambda response failed", zap.Error(err), zap.Any("body", body))
		return events.APIGatewayProxyResponse{}, err
	}

	return events.APIGatewayProxyResponse{
		StatusCode: code,
		Headers:    map[string]string{"Content-Type": "application/json; charset=utf-8"},
		Body:       string(buffer),
	}, nil
}
