package config

import "time"

// PipelineConfig caps every phase of the scrape+analyze pipeline.
type PipelineConfig struct {
	// Stories phase
	MaxStories  int // overall story cap
	MaxPages    int // Algolia pages fetched
	HitsPerPage int
	PageDelay   time.Duration // minimum pause between pages

	// Comments phase
	StoriesForComments  int // top-N stories whose comments are fetched
	MaxCommentsPerStory int
	CommentDelay        time.Duration // minimum pause between comment fetches
	SnippetLen          int           // display snippet length for events

	// Analysis phase
	AnalysisMaxStories          int
	AnalysisMaxCommentsPerStory int
	AnalysisCommentSnippetLen   int
	AnalysisStoryTextLen        int
	AnalyzerAttempts            int           // total attempts, incl. first
	AnalyzerInitialBackoff      time.Duration // doubles per attempt

	// Persistence phase
	MaxPainPoints         int
	MaxQuotesPerPainPoint int
	MaxQuoteLen           int
	QuoteMatchPrefixLen   int // example prefix matched against the comment corpus
	FallbackQuotePoolSize int // top comments round-robined when the LLM sources no quotes
}

// LoadPipelineConfig reads pipeline settings from the environment.
func LoadPipelineConfig() (*PipelineConfig, error) {
	cfg := &PipelineConfig{
		MaxStories:  getEnvInt("HN_MAX_STORIES", 60),
		MaxPages:    getEnvInt("HN_MAX_PAGES", 3),
		HitsPerPage: getEnvInt("HN_HITS_PER_PAGE", 30),
		PageDelay:   getEnvDurationMS("PAGE_DELAY_MS", 200*time.Millisecond),

		StoriesForComments:  getEnvInt("HN_STORIES_FOR_COMMENTS", 20),
		MaxCommentsPerStory: getEnvInt("HN_MAX_COMMENTS_PER_STORY", 20),
		CommentDelay:        getEnvDurationMS("COMMENT_DELAY_MS", 120*time.Millisecond),
		SnippetLen:          getEnvInt("EVENT_SNIPPET_LEN", 200),

		AnalysisMaxStories:          getEnvInt("ANALYSIS_MAX_STORIES", 40),
		AnalysisMaxCommentsPerStory: getEnvInt("ANALYSIS_MAX_COMMENTS_PER_STORY", 10),
		AnalysisCommentSnippetLen:   getEnvInt("ANALYSIS_COMMENT_SNIPPET_LEN", 280),
		AnalysisStoryTextLen:        getEnvInt("ANALYSIS_STORY_TEXT_LEN", 400),
		AnalyzerAttempts:            getEnvInt("ANALYZER_ATTEMPTS", 3),
		AnalyzerInitialBackoff:      getEnvDurationMS("ANALYZER_INITIAL_BACKOFF_MS", time.Second),

		MaxPainPoints:         getEnvInt("MAX_PAIN_POINTS", 10),
		MaxQuotesPerPainPoint: getEnvInt("MAX_QUOTES_PER_PAIN_POINT", 5),
		MaxQuoteLen:           getEnvInt("MAX_QUOTE_LEN", 800),
		QuoteMatchPrefixLen:   getEnvInt("QUOTE_MATCH_PREFIX_LEN", 50),
		FallbackQuotePoolSize: getEnvInt("FALLBACK_QUOTE_POOL_SIZE", 20),
	}

	if err := requirePositive("HN_MAX_STORIES", cfg.MaxStories); err != nil {
		return nil, err
	}
	if err := requirePositive("MAX_PAIN_POINTS", cfg.MaxPainPoints); err != nil {
		return nil, err
	}
	if err := requirePositive("ANALYZER_ATTEMPTS", cfg.AnalyzerAttempts); err != nil {
		return nil, err
	}
	return cfg, nil
}
