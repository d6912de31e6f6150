// Package repository calls the todos HTTP API and re-validates every response
// against the shared record schema before handing it to the caller.
package repository

//go:generate mockgen -source=repository.go -destination=mocks/repository_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"todofeed/config"
	"todofeed/infras/otel"
	"todofeed/shared/constant"
	"todofeed/shared/schema"
	"todofeed/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	todosPath       = "/api/todos"
	maxResponseSize = 1 << 20
)

var (
	// ErrServer is returned when the API answers with a non-2xx status or cannot be reached.
	ErrServer = errors.New("server error")
	// ErrInvalidResponse is returned when a 2xx body does not match the record schema.
	ErrInvalidResponse = errors.New("invalid response")
)

type Todo struct {
	ID      string
	Content string
	Date    time.Time
	Done    bool
}

type Page struct {
	Todos []Todo
	Total int
	Pages int
}

type TodoRepository interface {
	Get(ctx context.Context, page, limit int) (Page, error)
	CreateByContent(ctx context.Context, content string) (Todo, error)
	ToggleDone(ctx context.Context, id string) (Todo, error)
	DeleteByID(ctx context.Context, id string) error
}

type wireTodo struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Date    string `json:"date"`
	Done    bool   `json:"done"`
}

func (w wireTodo) toTodo() (Todo, error) {
	date, err := timezone.ParseTimestamp(w.Date)
	if err != nil {
		return Todo{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	return Todo{ID: w.ID, Content: w.Content, Date: date, Done: w.Done}, nil
}

type envelope struct {
	Todo wireTodo `json:"todo"`
}

type list struct {
	Total int        `json:"total"`
	Pages int        `json:"pages"`
	Todos []wireTodo `json:"todos"`
}

type httpRepository struct {
	baseURL string
	client  *http.Client
	otel    otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) TodoRepository {
	return NewWithClient(cfg.Client.BaseURL, &http.Client{
		Timeout: time.Duration(cfg.Client.TimeoutSeconds) * time.Second,
	}, otl)
}

func NewWithClient(baseURL string, client *http.Client, otl otel.Otel) TodoRepository {
	return &httpRepository{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		otel:    otl,
	}
}

func (repo *httpRepository) Get(ctx context.Context, page, limit int) (res Page, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := url.Values{}
	query.Set(constant.RequestParamPage, strconv.Itoa(page))
	query.Set(constant.RequestParamLimit, strconv.Itoa(limit))

	body, err := repo.do(ctx, http.MethodGet, todosPath+"?"+query.Encode(), nil)
	if err != nil {
		return res, err
	}

	var out list
	if err = schema.DecodeTodoList(body, &out); err != nil {
		log.Warn().Err(err).Msg("todo list response does not match the record schema")

		return res, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	res = Page{Total: out.Total, Pages: out.Pages, Todos: make([]Todo, 0, len(out.Todos))}

	for _, item := range out.Todos {
		todo, err := item.toTodo()
		if err != nil {
			return Page{}, err
		}

		res.Todos = append(res.Todos, todo)
	}

	return res, nil
}

func (repo *httpRepository) CreateByContent(ctx context.Context, content string) (res Todo, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".CreateByContent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payload, err := json.Marshal(map[string]string{"content": content})
	if err != nil {
		return res, fmt.Errorf("failed to encode request: %w", err)
	}

	body, err := repo.do(ctx, http.MethodPost, todosPath, payload)
	if err != nil {
		return res, err
	}

	return decodeEnvelope(body)
}

func (repo *httpRepository) ToggleDone(ctx context.Context, id string) (res Todo, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".ToggleDone")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	body, err := repo.do(ctx, http.MethodPut, todosPath+"/"+url.PathEscape(id)+"/toggle-done", nil)
	if err != nil {
		return res, err
	}

	return decodeEnvelope(body)
}

func (repo *httpRepository) DeleteByID(ctx context.Context, id string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".DeleteByID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = repo.do(ctx, http.MethodDelete, todosPath+"/"+url.PathEscape(id), nil)

	return err
}

func decodeEnvelope(body []byte) (Todo, error) {
	var out envelope
	if err := schema.DecodeTodoEnvelope(body, &out); err != nil {
		log.Warn().Err(err).Msg("todo response does not match the record schema")

		return Todo{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	return out.Todo.toTodo()
}

// do sends the request and returns the body of a 2xx response. Anything else is ErrServer.
func (repo *httpRepository) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, repo.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	if payload != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	resp, err := repo.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrServer, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", ErrServer, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("todo API request failed")

		return nil, fmt.Errorf("%w: %s %s responded %d", ErrServer, method, path, resp.StatusCode)
	}

	return body, nil
}
