package githubService

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

const maxIssues = 3

// Service searches the product repository for issues matching a support
// question. It feeds the optional GitHub context source in the responder.
type Service struct {
	client *github.Client
	repo   string // "owner/name"
}

func NewService(ctx context.Context, token, repo string) (*Service, error) {
	if token == "" {
		return nil, fmt.Errorf("GitHub token not set")
	}
	if !strings.Contains(repo, "/") {
		return nil, fmt.Errorf("repo must be owner/name, got %q", repo)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	return &Service{client: github.NewClient(tc), repo: repo}, nil
}

var wordRe = regexp.MustCompile(`[a-zA-Z0-9]+`)

// searchTerms strips the question down to a handful of searchable words.
// GitHub's search syntax chokes on raw punctuation.
func searchTerms(question string) string {
	words := wordRe.FindAllString(question, -1)
	var kept []string
	for _, w := range words {
		if len(w) < 3 {
			continue
		}
		kept = append(kept, w)
		if len(kept) == 6 {
			break
		}
	}
	return strings.Join(kept, " ")
}

// SearchIssues returns a short snippet list of matching issues, or an
// empty string when nothing matches.
func (s *Service) SearchIssues(ctx context.Context, question string) (string, error) {
	terms := searchTerms(question)
	if terms == "" {
		return "", nil
	}

	query := fmt.Sprintf("%s repo:%s in:title,body", terms, s.repo)
	result, _, err := s.client.Search.Issues(ctx, query, &github.SearchOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: maxIssues},
	})
	if err != nil {
		return "", err
	}
	if len(result.Issues) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("Possibly related GitHub issues:\n")
	for _, issue := range result.Issues {
		sb.WriteString(fmt.Sprintf("- #%d %s (%s) %s\n",
			issue.GetNumber(), issue.GetTitle(), issue.GetState(), issue.GetHTMLURL()))
	}
	return sb.String(), nil
}
