// Package suggest generates listing description drafts with an LLM.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/moimlab/moim/internal/llm"
	"github.com/moimlab/moim/internal/session"
)

// ErrSuggestionTooShort means the model returned a description below the minimum length.
var ErrSuggestionTooShort = errors.New("suggested description is too short")

const systemPrompt = `당신은 모임 플랫폼의 글쓰기 도우미입니다. 모임 소개글을 작성해 주세요.

모임 정보:
- 제목: %s
- 카테고리: %s
- 진행 방식: %s
%s
작성 규칙:
- 한국어로 작성합니다.
- 따뜻하고 초대하는 말투를 사용합니다.
- 150자에서 400자 사이로 작성합니다.
- 마크다운, 이모지, 해시태그를 사용하지 않습니다.
- 소개글 본문만 출력합니다. 제목이나 머리말을 붙이지 않습니다.`

// SessionInfo describes one scheduled session for prompt context.
type SessionInfo struct {
	Date  string // "{y}년 {m}월 {d}일"
	Start string // "오전 10:00"
	End   string // "오전 11:00"
}

// Request carries the listing fields the prompt is built from.
type Request struct {
	Title        string
	Categories   []string
	ActivityType string // "온라인" or "오프라인"
	Sessions     []SessionInfo
}

// Suggester asks an LLM for a listing description and sanitizes the result.
type Suggester struct {
	client llm.Client
}

// NewSuggester creates a Suggester backed by the given client.
func NewSuggester(client llm.Client) *Suggester {
	return &Suggester{client: client}
}

// BuildMessages creates the chat messages for a suggestion request.
func (s *Suggester) BuildMessages(req Request) []llm.Message {
	categories := strings.Join(req.Categories, ", ")
	if categories == "" {
		categories = "미정"
	}
	activity := req.ActivityType
	if activity == "" {
		activity = "미정"
	}

	var schedule strings.Builder
	if len(req.Sessions) > 0 {
		schedule.WriteString("- 일정:\n")
		for _, sess := range req.Sessions {
			fmt.Fprintf(&schedule, "  - %s %s ~ %s\n", sess.Date, sess.Start, sess.End)
		}
	}

	prompt := fmt.Sprintf(systemPrompt, req.Title, categories, activity, schedule.String())
	return []llm.Message{{Role: "user", Content: prompt}}
}

// Suggest asks the LLM for a description and returns a sanitized draft
// that satisfies the content rules.
func (s *Suggester) Suggest(ctx context.Context, req Request) (string, error) {
	resp, err := s.client.Chat(ctx, s.BuildMessages(req))
	if err != nil {
		return "", fmt.Errorf("requesting suggestion: %w", err)
	}

	content := Sanitize(resp)
	if session.GraphemeLength(content) < session.MinContentLength {
		return "", ErrSuggestionTooShort
	}
	return content, nil
}

var (
	fenceRe       = regexp.MustCompile("(?s)^```[a-z]*\n(.*?)\n?```$")
	spaceRunRe    = regexp.MustCompile(`[ \t]{2,}`)
	blankLinesRe  = regexp.MustCompile(`\n{2,}`)
	spacedBreakRe = regexp.MustCompile(`[ \t]*\n[ \t]*`)
)

// Sanitize normalizes model output so it passes the description content rules:
// no consecutive spaces, no blank lines, no whitespace adjacent to a line
// break, and at most the maximum grapheme length.
func Sanitize(raw string) string {
	content := strings.TrimSpace(raw)
	if m := fenceRe.FindStringSubmatch(content); m != nil {
		content = strings.TrimSpace(m[1])
	}
	content = spacedBreakRe.ReplaceAllString(content, "\n")
	content = blankLinesRe.ReplaceAllString(content, "\n")
	content = spaceRunRe.ReplaceAllString(content, " ")
	return session.TruncateGraphemes(content, session.MaxContentLength)
}
