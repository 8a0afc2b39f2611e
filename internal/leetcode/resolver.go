// Package leetcode resolves problem URL slugs to numeric question ids
// through the public GraphQL endpoint.
package leetcode

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

const questionIDQuery = `query getQuestionDetail($titleSlug: String!) {
  question(titleSlug: $titleSlug) {
    questionId
  }
}`

// SlugFromURL extracts the final non-empty path segment of a problem
// URL, e.g. "two-sum" from "https://leetcode.com/problems/two-sum/".
func SlugFromURL(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("url.Parse(%q) > %w", rawURL, err)
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	slug := segments[len(segments)-1]
	if slug == "" {
		return "", fmt.Errorf("no path segment in URL %q", rawURL)
	}
	return slug, nil
}

type graphqlRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

type questionIDResponse struct {
	Data struct {
		Question *struct {
			QuestionID string `json:"questionId"`
		} `json:"question"`
	} `json:"data"`
}

// Resolver looks up question ids for problem slugs. One synchronous
// request per lookup; no retry, no caching.
type Resolver struct {
	endpoint   string
	httpClient *resty.Client
}

// NewResolver creates a Resolver against the given GraphQL endpoint.
func NewResolver(endpoint string) *Resolver {
	return &Resolver{
		endpoint:   endpoint,
		httpClient: resty.New(),
	}
}

// Resolve derives the slug from the problem URL and returns the
// question id the endpoint reports for it. An unknown slug comes back
// from the API as a null question and is reported as an error.
func (r *Resolver) Resolve(ctx context.Context, problemURL string) (string, error) {
	slug, err := SlugFromURL(problemURL)
	if err != nil {
		return "", err
	}

	var result questionIDResponse
	res, err := r.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(graphqlRequest{
			Query:     questionIDQuery,
			Variables: map[string]string{"titleSlug": slug},
		}).
		SetResult(&result).
		Post(r.endpoint)
	if err != nil {
		return "", fmt.Errorf("client.R.Post > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}
	if result.Data.Question == nil || result.Data.Question.QuestionID == "" {
		return "", fmt.Errorf("no question id for slug %q", slug)
	}
	return result.Data.Question.QuestionID, nil
}
