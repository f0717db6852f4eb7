package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/Abusha-Ansari/Split-Karo/pkg/api"
)

// ExpenseServiceName is the fully-qualified name of the ExpenseService service.
const ExpenseServiceName = "splitkaro.v1.ExpenseService"

// These constants are the fully-qualified names of the RPCs defined in this
// package. They're exposed at runtime as Spec.Procedure and as the final two
// segments of the HTTP route.
const (
	// ExpenseServiceAddExpenseProcedure is the fully-qualified name of the ExpenseService's AddExpense RPC.
	ExpenseServiceAddExpenseProcedure = "/splitkaro.v1.ExpenseService/AddExpense"
	// ExpenseServiceListExpensesProcedure is the fully-qualified name of the ExpenseService's ListExpenses RPC.
	ExpenseServiceListExpensesProcedure = "/splitkaro.v1.ExpenseService/ListExpenses"
)

// ExpenseServiceClient is a client for the splitkaro.v1.ExpenseService service.
type ExpenseServiceClient interface {
	AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
}

// NewExpenseServiceClient constructs a client for the splitkaro.v1.ExpenseService service.
// Messages are sent with the JSON codec; baseURL is the server's address,
// e.g. http://localhost:8080.
func NewExpenseServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ExpenseServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
	return &expenseServiceClient{
		addExpense: connect.NewClient[api.AddExpenseRequest, api.AddExpenseResponse](
			httpClient,
			baseURL+ExpenseServiceAddExpenseProcedure,
			opts...,
		),
		listExpenses: connect.NewClient[api.ListExpensesRequest, api.ListExpensesResponse](
			httpClient,
			baseURL+ExpenseServiceListExpensesProcedure,
			opts...,
		),
	}
}

// expenseServiceClient implements ExpenseServiceClient.
type expenseServiceClient struct {
	addExpense   *connect.Client[api.AddExpenseRequest, api.AddExpenseResponse]
	listExpenses *connect.Client[api.ListExpensesRequest, api.ListExpensesResponse]
}

// AddExpense calls splitkaro.v1.ExpenseService.AddExpense.
func (c *expenseServiceClient) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

// ListExpenses calls splitkaro.v1.ExpenseService.ListExpenses.
func (c *expenseServiceClient) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

// ExpenseServiceHandler is an implementation of the splitkaro.v1.ExpenseService service.
// Recording and listing trip expenses.
type ExpenseServiceHandler interface {
	AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
}

// NewExpenseServiceHandler builds an HTTP handler from the service implementation. It
// returns the path on which to mount the handler and the handler itself.
func NewExpenseServiceHandler(svc ExpenseServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)
	expenseServiceAddExpenseHandler := connect.NewUnaryHandler(
		ExpenseServiceAddExpenseProcedure,
		svc.AddExpense,
		opts...,
	)
	expenseServiceListExpensesHandler := connect.NewUnaryHandler(
		ExpenseServiceListExpensesProcedure,
		svc.ListExpenses,
		opts...,
	)
	return "/splitkaro.v1.ExpenseService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ExpenseServiceAddExpenseProcedure:
			expenseServiceAddExpenseHandler.ServeHTTP(w, r)
		case ExpenseServiceListExpensesProcedure:
			expenseServiceListExpensesHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedExpenseServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedExpenseServiceHandler struct{}

func (UnimplementedExpenseServiceHandler) AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitkaro.v1.ExpenseService.AddExpense is not implemented"))
}

func (UnimplementedExpenseServiceHandler) ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitkaro.v1.ExpenseService.ListExpenses is not implemented"))
}
