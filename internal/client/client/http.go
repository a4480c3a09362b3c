package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/sporttogether/internal/api"
	"github.com/dmitrijs2005/sporttogether/internal/client/transport"
	"github.com/dmitrijs2005/sporttogether/internal/logging"
)

const (
	loginPath       = "/login/"
	registerPath    = "/register/"
	readGamesPath   = "/read_games/"
	searchGamesPath = "/search_games/"
	updateGamePath  = "/update_game/"
	createGamePath  = "/create_game/"
	joinGamePath    = "/join_game/"
	withdrawPath    = "/withdraw_game/"
	deleteUserPath  = "/delete_user/"
	pingPath        = "/ping"
)

type HTTPClient struct {
	transport transport.Transport
	logger    logging.Logger
}

func NewHTTPClient(t transport.Transport, logger logging.Logger) *HTTPClient {
	return &HTTPClient{transport: t, logger: logger.With("module", "client")}
}

func (c *HTTPClient) post(ctx context.Context, path string, payload, out any) error {
	if err := c.transport.Send(ctx, http.MethodPost, path, payload, out); err != nil {
		return c.mapError(err)
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, creds any) (map[string]any, error) {
	var resp api.LoginResponse
	if err := c.post(ctx, loginPath, creds, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &RejectedError{Message: resp.Text()}
	}
	fields, err := resp.Fields()
	if err != nil {
		return nil, err
	}
	return fields, nil
}

func (c *HTTPClient) Register(ctx context.Context, fields any) (string, error) {
	var resp api.RegisterResponse
	if err := c.post(ctx, registerPath, fields, &resp); err != nil {
		return "", err
	}
	if !resp.RegistrationStatus {
		return "", &RejectedError{Message: resp.RegistrationMessage}
	}
	return resp.RegistrationMessage, nil
}

func (c *HTTPClient) GamesForUser(ctx context.Context, userID string) (*api.UserGames, error) {
	var resp api.UserGames
	if err := c.post(ctx, readGamesPath, api.ReadGamesByUserRequest{UserID: userID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GamesByIDs(ctx context.Context, ids []string) ([]api.GameRecord, error) {
	if ids == nil {
		ids = []string{}
	}
	var resp []api.GameRecord
	if err := c.post(ctx, readGamesPath, api.ReadGamesByIDsRequest{GameIDs: ids}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) SearchGames(ctx context.Context, location string) ([]api.GameRecord, error) {
	var resp api.SearchGamesResponse
	if err := c.post(ctx, searchGamesPath, api.SearchGamesRequest{Location: location}, &resp); err != nil {
		return nil, err
	}
	return resp.Message, nil
}

func (c *HTTPClient) UpdateGame(ctx context.Context, fields any) (*api.GameRecord, error) {
	var resp api.UpdateGameResponse
	if err := c.post(ctx, updateGamePath, fields, &resp); err != nil {
		return nil, err
	}
	return resp.GameInfo.Record, nil
}

func (c *HTTPClient) CreateGame(ctx context.Context, fields any) (string, error) {
	return c.status(ctx, createGamePath, fields)
}

func (c *HTTPClient) JoinGame(ctx context.Context, gameID, userID string) (string, error) {
	return c.status(ctx, joinGamePath, api.JoinGameRequest{GameID: gameID, UserID: userID})
}

func (c *HTTPClient) WithdrawGame(ctx context.Context, gameID, userID string) (string, error) {
	return c.status(ctx, withdrawPath, api.JoinGameRequest{GameID: gameID, UserID: userID})
}

func (c *HTTPClient) DeleteAccount(ctx context.Context, userID string) (string, error) {
	return c.status(ctx, deleteUserPath, api.DeleteUserRequest{UserID: userID})
}

func (c *HTTPClient) status(ctx context.Context, path string, payload any) (string, error) {
	var resp api.StatusResponse
	if err := c.post(ctx, path, payload, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", &RejectedError{Message: resp.Message}
	}
	return resp.Message, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	if err := c.transport.Send(ctx, http.MethodGet, pingPath, nil, nil); err != nil {
		return c.mapError(err)
	}
	return nil
}

func (c *HTTPClient) mapError(err error) error {
	if errors.Is(err, transport.ErrNetwork) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	var se *transport.StatusError
	if errors.As(err, &se) {
		switch se.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %w", ErrUnauthorized, err)
		case http.StatusServiceUnavailable, http.StatusGatewayTimeout, http.StatusBadGateway:
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
	}
	return err
}
