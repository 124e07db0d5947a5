// Package learn finds articles and videos about a topic through a
// generative model with web search, and lists the external AI tools the
// Learn screen links to.
package learn

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential is returned at call time when no API key is
	// configured.
	ErrMissingCredential = errors.New("learn: API key not set, configure api_key (or GEMINI_API_KEY) to use Learn")
	// ErrInvalidCredential is returned when the upstream rejects the key.
	ErrInvalidCredential = errors.New("learn: invalid API key, please check your configuration")
	// ErrMalformedResponse is returned when the model's answer cannot be used
	// at all. Retrying may help.
	ErrMalformedResponse = errors.New("learn: the model returned an invalid response, please try again")
)

// CurrentEvents is the topic that selects the news prompt.
const CurrentEvents = "\x00current-events"

type Article struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

type Video struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

// Result is what a query found. Both lists are non-nil.
type Result struct {
	Articles []Article `json:"articles"`
	Videos   []Video   `json:"videos"`
}

// Querier runs one search. Implementations return ErrMissingCredential,
// ErrInvalidCredential or ErrMalformedResponse where those apply and wrap
// any other upstream failure.
type Querier interface {
	Query(ctx context.Context, topic string) (*Result, error)
}

const (
	format = `Your response must be a valid JSON object only, without any surrounding text or markdown formatting. ` +
		`The JSON object should have two top-level keys: "articles" and "videos". ` +
		`The "articles" key should be an array of objects, where each object has "title" (string), "link" (string), and "snippet" (string). ` +
		`The "videos" key should be an array of objects, where each object has "title" (string), "link" (string), and "description" (string).`

	topicPrompt = `You are a helpful research assistant. Find relevant, high-quality articles and YouTube videos about the user's topic: %q. ` +
		format + ` If you cannot find relevant results, return an empty array for the corresponding key.`

	newsPrompt = `You are a helpful news aggregator. Find recent, high-quality articles and YouTube videos about current world events, technology, science, and culture. ` +
		format + ` Ensure a diverse range of topics.`
)

// Prompt returns the model prompt for topic.
func Prompt(topic string) string {
	if topic == CurrentEvents {
		return newsPrompt
	}
	return fmt.Sprintf(topicPrompt, topic)
}

// Site is an external AI tool the Learn screen launches.
type Site struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Sites lists the launchpad entries in display order.
var Sites = []Site{
	{
		Name:        "Perplexity",
		URL:         "https://www.perplexity.ai/",
		Description: "An AI-powered search engine that gives direct answers to questions with cited sources. Great for research.",
	},
	{
		Name:        "Google AI Studio",
		URL:         "https://aistudio.google.com/prompts/new_chat",
		Description: "A professional web-based tool for prototyping and running prompts with Google's latest Gemini models.",
	},
	{
		Name:        "ChatGPT",
		URL:         "https://chat.openai.com/",
		Description: "The classic conversational AI from OpenAI. Excellent for creative writing, brainstorming, and general queries.",
	},
}
