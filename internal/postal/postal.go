// Package postal looks up Japanese addresses from postal codes via the
// zipcloud web API.
package postal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const defaultBaseURL = "https://zipcloud.ibsnet.co.jp/api/search"

// ErrInvalidPostalCode is returned before any network call when the code
// is not 7 digits after normalization.
var ErrInvalidPostalCode = errors.New("郵便番号は7桁の数字で入力してください")

// ErrNotFound is returned when zipcloud has no address for the code.
var ErrNotFound = errors.New("該当する住所が見つかりませんでした")

var postalCodeRe = regexp.MustCompile(`^\d{7}$`)

// Address is a resolved postal address.
type Address struct {
	Prefecture string
	City       string
	Town       string
}

// String joins the address parts in display order.
func (a Address) String() string {
	return a.Prefecture + a.City + a.Town
}

// Client resolves postal codes through zipcloud.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client against the public zipcloud endpoint.
func New() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Normalize strips dashes and spaces from a postal code as typed.
func Normalize(code string) string {
	code = strings.ReplaceAll(code, "-", "")
	code = strings.ReplaceAll(code, "ー", "")
	return strings.Join(strings.Fields(code), "")
}

type searchResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Results []struct {
		Address1 string `json:"address1"`
		Address2 string `json:"address2"`
		Address3 string `json:"address3"`
	} `json:"results"`
}

// Lookup resolves a postal code to an address. The code may contain a
// dash; it is normalized before validation.
func (c *Client) Lookup(ctx context.Context, code string) (Address, error) {
	code = Normalize(code)
	if !postalCodeRe.MatchString(code) {
		return Address{}, ErrInvalidPostalCode
	}

	u := c.baseURL + "?zipcode=" + url.QueryEscape(code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Address{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Address{}, fmt.Errorf("住所の取得に失敗しました: %w", err)
	}
	defer resp.Body.Close()

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Address{}, fmt.Errorf("decode postal response: %w", err)
	}
	if result.Status != 200 {
		if result.Message != "" {
			return Address{}, fmt.Errorf("住所の取得に失敗しました: %s", result.Message)
		}
		return Address{}, fmt.Errorf("住所の取得に失敗しました (status %d)", result.Status)
	}
	if len(result.Results) == 0 {
		return Address{}, ErrNotFound
	}

	r := result.Results[0]
	return Address{Prefecture: r.Address1, City: r.Address2, Town: r.Address3}, nil
}
