package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sort"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/painscope/painscope/ent"
	"github.com/painscope/painscope/ent/search"
	"github.com/painscope/painscope/ent/searchsummary"
	"github.com/painscope/painscope/pkg/analyzer"
	"github.com/painscope/painscope/pkg/cache"
	"github.com/painscope/painscope/pkg/config"
	"github.com/painscope/painscope/pkg/events"
	"github.com/painscope/painscope/pkg/fingerprint"
	"github.com/painscope/painscope/pkg/hackernews"
	"github.com/painscope/painscope/pkg/htmltext"
	"github.com/painscope/painscope/pkg/metrics"
	"github.com/painscope/painscope/pkg/models"
	"github.com/painscope/painscope/pkg/services"
)

// User-facing failure classifications persisted to error_message.
const (
	networkMessage  = "Unable to reach external services."
	analysisMessage = "AI analysis failed."
	genericMessage  = "Something went wrong."
)

// errAnalysisFailed marks analyzer transport failures that exhausted their
// retries, so the classifier can distinguish them from scrape failures.
var errAnalysisFailed = errors.New("analysis failed")

// analyzerServiceName labels api_usages rows written by the pipeline.
const analyzerServiceName = "gemini"

// Pipeline is the SearchExecutor: it scrapes stories and comments, runs
// the AI analysis, persists the result set in one transaction, and warms
// the result cache.
type Pipeline struct {
	client    *ent.Client
	source    hackernews.NewsSource
	analyzer  analyzer.Analyzer
	publisher *events.EventPublisher
	cache     *cache.Cache
	results   *services.ResultService
	usage     *services.UsageService
	jobLogs   *services.JobLogService
	cfg       *config.PipelineConfig
}

// NewPipeline creates the pipeline executor. publisher and cache may be
// nil in tests; the pipeline degrades to silent progress and no cache
// warming.
func NewPipeline(
	client *ent.Client,
	source hackernews.NewsSource,
	an analyzer.Analyzer,
	publisher *events.EventPublisher,
	resultCache *cache.Cache,
	results *services.ResultService,
	usage *services.UsageService,
	jobLogs *services.JobLogService,
	cfg *config.PipelineConfig,
) *Pipeline {
	return &Pipeline{
		client:    client,
		source:    source,
		analyzer:  an,
		publisher: publisher,
		cache:     resultCache,
		results:   results,
		usage:     usage,
		jobLogs:   jobLogs,
		cfg:       cfg,
	}
}

// Execute runs the full pipeline for one claimed search.
//
// The summary row is the idempotency guard: it is written last inside the
// persistence transaction, so its presence means a previous attempt fully
// persisted the result set and this redelivery only needs to re-warm the
// cache.
func (p *Pipeline) Execute(ctx context.Context, row *ent.Search) *ExecutionResult {
	done, err := p.hasResultSet(ctx, row.ID)
	if err != nil {
		return p.failure(ctx, row, fmt.Errorf("idempotency check failed: %w", err))
	}
	if done {
		slog.Info("Search already has a persisted result set, skipping pipeline", "search_id", row.ID)
		if err := p.finalize(ctx, row); err != nil {
			slog.Warn("Failed to re-warm cache for completed search", "search_id", row.ID, "error", err)
		}
		return &ExecutionResult{Status: search.StatusCompleted, AlreadyCompleted: true}
	}

	stories, err := p.fetchStories(ctx, row)
	if err != nil {
		return p.failure(ctx, row, fmt.Errorf("stories phase: %w", err))
	}

	corpus, err := p.fetchComments(ctx, row, stories)
	if err != nil {
		return p.failure(ctx, row, fmt.Errorf("comments phase: %w", err))
	}

	analysis, err := p.analyze(ctx, row, stories, corpus)
	if err != nil {
		return p.failure(ctx, row, fmt.Errorf("analysis phase: %w", err))
	}

	if err := p.persist(ctx, row, stories, corpus, analysis); err != nil {
		return p.failure(ctx, row, fmt.Errorf("persistence phase: %w", err))
	}

	if analysis != nil && analysis.TokensUsed > 0 {
		metrics.AnalyzerTokens.Add(float64(analysis.TokensUsed))
		if p.usage != nil {
			if err := p.usage.Record(ctx, row.ID, analyzerServiceName, analysis.TokensUsed); err != nil {
				slog.Warn("Failed to record API usage", "search_id", row.ID, "error", err)
			}
		}
	}

	if err := p.finalize(ctx, row); err != nil {
		slog.Warn("Failed to warm result cache", "search_id", row.ID, "error", err)
	}

	return &ExecutionResult{Status: search.StatusCompleted}
}

// hasResultSet reports whether a fully persisted result set exists.
func (p *Pipeline) hasResultSet(ctx context.Context, searchID string) (bool, error) {
	return p.client.SearchSummary.Query().
		Where(searchsummary.SearchIDEQ(searchID)).
		Exist(ctx)
}

// failure classifies err into a user-facing message and returns the
// failed execution result.
func (p *Pipeline) failure(ctx context.Context, row *ent.Search, err error) *ExecutionResult {
	msg := classifyFailure(err)
	if p.jobLogs != nil {
		p.jobLogs.Error(ctx, row.ID, "Pipeline attempt failed", map[string]interface{}{
			"classification": msg,
			"error":          err.Error(),
		})
	}
	return &ExecutionResult{Status: search.StatusFailed, Message: msg, Err: err}
}

// classifyFailure maps an internal error to the user-facing message
// persisted on the search row. Deadline and cancellation are checked
// first: a network call cut off by the search timeout is a timeout, not
// a network failure.
func classifyFailure(err error) string {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return timeoutMessage
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return networkMessage
	}
	if errors.Is(err, errAnalysisFailed) {
		return analysisMessage
	}
	return genericMessage
}

// fetchStories pulls story pages until the story cap, the page cap, or an
// empty page. Each accepted story is published as a story_discovered
// event; a phase_progress event closes the phase.
func (p *Pipeline) fetchStories(ctx context.Context, row *ent.Search) ([]hackernews.Story, error) {
	stories := make([]hackernews.Story, 0, p.cfg.MaxStories)
	seen := make(map[string]bool)

	for page := 0; page < p.cfg.MaxPages && len(stories) < p.cfg.MaxStories; page++ {
		if page > 0 {
			if err := sleepCtx(ctx, p.cfg.PageDelay); err != nil {
				return nil, err
			}
		}

		batch, err := p.source.Search(ctx, hackernews.SearchParams{
			Query:       row.Topic,
			Tags:        row.Tags,
			TimeRange:   string(row.TimeRange),
			MinPoints:   row.MinUpvotes,
			SortBy:      string(row.SortBy),
			Page:        page,
			HitsPerPage: p.cfg.HitsPerPage,
		})
		if err != nil {
			return nil, fmt.Errorf("story search page %d: %w", page, err)
		}
		if len(batch) == 0 {
			break
		}

		for _, story := range batch {
			if seen[story.ID] {
				continue
			}
			seen[story.ID] = true
			stories = append(stories, story)
			p.publishStory(ctx, row.ID, story)
			if len(stories) >= p.cfg.MaxStories {
				break
			}
		}
	}

	// The API has no upvote sort; order client-side so the comments phase
	// picks the most discussed stories first.
	if string(row.SortBy) == models.SortByUpvotes {
		sort.SliceStable(stories, func(i, j int) bool {
			return stories[i].Points > stories[j].Points
		})
	}

	p.publishProgress(ctx, row.ID, events.PhaseStories, events.PhaseProgressPayload{
		Current: len(stories),
		Total:   len(stories),
		Message: fmt.Sprintf("Found %d stories", len(stories)),
	})
	return stories, nil
}

func (p *Pipeline) publishStory(ctx context.Context, searchID string, story hackernews.Story) {
	if p.publisher == nil {
		return
	}
	url := story.URL
	if url == "" {
		url = story.Permalink
	}
	err := p.publisher.PublishStoryDiscovered(ctx, searchID, events.StoryDiscoveredPayload{
		StoryID:     story.ID,
		Title:       story.Title,
		URL:         url,
		Points:      story.Points,
		NumComments: story.NumComments,
		Tag:         models.PrimaryTag(story.Tags),
		CreatedAt:   story.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		slog.Warn("Failed to publish story event", "search_id", searchID, "story_id", story.ID, "error", err)
	}
}

// fetchComments pulls comments for the top stories. Each story fetch
// publishes one phase_progress event with the kept comments batched in;
// there is no per-comment event.
func (p *Pipeline) fetchComments(ctx context.Context, row *ent.Search, stories []hackernews.Story) ([]hackernews.Comment, error) {
	n := p.cfg.StoriesForComments
	if n > len(stories) {
		n = len(stories)
	}

	var corpus []hackernews.Comment
	for i := 0; i < n; i++ {
		if i > 0 {
			if err := sleepCtx(ctx, p.cfg.CommentDelay); err != nil {
				return nil, err
			}
		}

		story := stories[i]
		comments, err := p.source.Comments(ctx, story.ID)
		if err != nil {
			return nil, fmt.Errorf("comments for story %s: %w", story.ID, err)
		}
		if len(comments) > p.cfg.MaxCommentsPerStory {
			comments = comments[:p.cfg.MaxCommentsPerStory]
		}
		corpus = append(corpus, comments...)

		snippets := make([]events.CommentSnippet, len(comments))
		for j, c := range comments {
			snippets[j] = events.CommentSnippet{
				CommentID: c.ID,
				Snippet:   htmltext.Truncate(c.Text, p.cfg.SnippetLen),
				Author:    c.Author,
				Upvotes:   c.Points,
				Permalink: c.Permalink,
			}
		}
		p.publishProgress(ctx, row.ID, events.PhaseComments, events.PhaseProgressPayload{
			Current:            i + 1,
			Total:              n,
			Message:            fmt.Sprintf("Fetched comments for %q", story.Title),
			TotalCommentsSoFar: len(corpus),
			Comments:           snippets,
		})
	}
	return corpus, nil
}

// analyze runs the AI analysis with retries. Structurally invalid output
// that survives all attempts is not fatal: the search still completes with
// tag-based fallback pain points and no stored analysis. Transport
// failures that survive all attempts fail the attempt.
func (p *Pipeline) analyze(ctx context.Context, row *ent.Search, stories []hackernews.Story, corpus []hackernews.Comment) (*analyzer.Analysis, error) {
	p.publishProgress(ctx, row.ID, events.PhaseAnalysis, events.PhaseProgressPayload{
		Message: "Analyzing discussions",
	})

	payload := p.buildAnalysisPayload(stories, corpus)
	if len(payload.Stories) == 0 {
		return nil, nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.cfg.AnalyzerInitialBackoff
	bo.Multiplier = 2
	bo.RandomizationFactor = 0

	var analysis *analyzer.Analysis
	operation := func() error {
		a, err := p.analyzer.Analyze(ctx, row.Topic, payload)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return err
		}
		if err := a.Validate(); err != nil {
			return err
		}
		analysis = a
		return nil
	}

	maxRetries := uint64(0)
	if p.cfg.AnalyzerAttempts > 1 {
		maxRetries = uint64(p.cfg.AnalyzerAttempts - 1)
	}
	err := backoff.Retry(operation, backoff.WithMaxRetries(backoff.WithContext(bo, ctx), maxRetries))
	if err != nil {
		if errors.Is(err, analyzer.ErrInvalidAnalysis) {
			slog.Warn("Analyzer output stayed invalid after retries, completing with fallback pain points",
				"search_id", row.ID, "error", err)
			if p.jobLogs != nil {
				p.jobLogs.Warn(ctx, row.ID, "Analyzer output invalid, using tag-based fallback", map[string]interface{}{
					"error": err.Error(),
				})
			}
			return nil, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %w", errAnalysisFailed, err)
	}
	return analysis, nil
}

// buildAnalysisPayload assembles the capped transcript the analyzer sees.
func (p *Pipeline) buildAnalysisPayload(stories []hackernews.Story, corpus []hackernews.Comment) analyzer.Payload {
	byStory := make(map[string][]string)
	for _, c := range corpus {
		if len(byStory[c.StoryID]) >= p.cfg.AnalysisMaxCommentsPerStory {
			continue
		}
		byStory[c.StoryID] = append(byStory[c.StoryID], htmltext.Truncate(c.Text, p.cfg.AnalysisCommentSnippetLen))
	}

	n := p.cfg.AnalysisMaxStories
	if n > len(stories) {
		n = len(stories)
	}
	payload := analyzer.Payload{Stories: make([]analyzer.StoryInput, 0, n)}
	for _, story := range stories[:n] {
		payload.Stories = append(payload.Stories, analyzer.StoryInput{
			Title:    story.Title,
			Text:     htmltext.Truncate(story.Text, p.cfg.AnalysisStoryTextLen),
			Tag:      models.PrimaryTag(story.Tags),
			Points:   story.Points,
			Comments: byStory[story.ID],
		})
	}
	return payload
}

// painPointSpec is one pain point staged for insertion, with its quotes.
type painPointSpec struct {
	id        string
	title     string
	sourceTag string
	mentions  int
	severity  *float64
	quotes    []quoteSpec
}

type quoteSpec struct {
	text      string
	author    string
	upvotes   int
	permalink string
}

// persist writes the result set in one transaction with the summary row
// last, so a partially committed attempt never looks complete.
func (p *Pipeline) persist(ctx context.Context, row *ent.Search, stories []hackernews.Story, corpus []hackernews.Comment, analysis *analyzer.Analysis) error {
	points := p.buildPainPoints(stories, analysis)
	p.attachQuotes(points, corpus, analysis)

	totalMentions := 0
	for _, pt := range points {
		totalMentions += pt.mentions
	}

	tx, err := p.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, pt := range points {
		create := tx.PainPoint.Create().
			SetID(pt.id).
			SetSearchID(row.ID).
			SetTitle(pt.title).
			SetSourceTag(pt.sourceTag).
			SetMentionsCount(pt.mentions)
		if pt.severity != nil {
			create.SetSeverityScore(*pt.severity)
		}
		if err := create.Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert pain point: %w", err)
		}

		for _, q := range pt.quotes {
			qc := tx.PainPointQuote.Create().
				SetID(uuid.New().String()).
				SetPainPointID(pt.id).
				SetQuoteText(q.text).
				SetUpvotes(q.upvotes).
				SetPermalink(q.permalink)
			if q.author != "" {
				qc.SetAuthorHandle(q.author)
			}
			if err := qc.Exec(ctx); err != nil {
				return fmt.Errorf("failed to insert quote: %w", err)
			}
		}
	}

	if analysis != nil {
		err := tx.AiAnalysis.Create().
			SetSearchID(row.ID).
			SetSummary(analysis.Summary).
			SetProblemClusters(analysis.ProblemClusters).
			SetProductIdeas(analysis.ProductIdeas).
			SetModel(analysis.Model).
			SetTokensUsed(analysis.TokensUsed).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to insert analysis: %w", err)
		}
	}

	err = tx.SearchSummary.Create().
		SetSearchID(row.ID).
		SetTotalPosts(len(stories)).
		SetTotalComments(len(corpus)).
		SetTotalMentions(totalMentions).
		SetSourceTags(orderedSourceTags(stories)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert summary: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit result set: %w", err)
	}
	return nil
}

// buildPainPoints converts problem clusters into pain point rows, falling
// back to one tag-based pain point per source tag when the analysis is
// absent or empty.
func (p *Pipeline) buildPainPoints(stories []hackernews.Story, analysis *analyzer.Analysis) []*painPointSpec {
	tags, tagCounts := tagFrequency(stories)

	if analysis == nil || len(analysis.ProblemClusters) == 0 {
		points := make([]*painPointSpec, 0, len(tags))
		for _, tag := range tags {
			if len(points) >= p.cfg.MaxPainPoints {
				break
			}
			points = append(points, &painPointSpec{
				id:        uuid.New().String(),
				title:     "Discussions in " + tag,
				sourceTag: tag,
				mentions:  tagCounts[tag],
			})
		}
		return points
	}

	clusters := analysis.ProblemClusters
	if len(clusters) > p.cfg.MaxPainPoints {
		clusters = clusters[:p.cfg.MaxPainPoints]
	}

	points := make([]*painPointSpec, 0, len(clusters))
	for i, cluster := range clusters {
		tag := models.TagStory
		if len(tags) > 0 {
			tag = tags[i%len(tags)]
		}
		severity := cluster.Severity
		points = append(points, &painPointSpec{
			id:        uuid.New().String(),
			title:     cluster.Title,
			sourceTag: tag,
			mentions:  cluster.MentionCount,
			severity:  &severity,
		})
	}
	return points
}

// attachQuotes sources supporting quotes for each pain point by matching
// cluster example prefixes against the comment corpus. When no example
// matches anything, the highest upvoted comments are distributed instead
// so completed results always carry real, linkable quotes.
func (p *Pipeline) attachQuotes(points []*painPointSpec, corpus []hackernews.Comment, analysis *analyzer.Analysis) {
	if len(points) == 0 || len(corpus) == 0 {
		return
	}

	used := make(map[string]bool)
	matched := 0

	if analysis != nil {
		for i, cluster := range analysis.ProblemClusters {
			if i >= len(points) {
				break
			}
			pt := points[i]
			for _, example := range cluster.Examples {
				if len(pt.quotes) >= p.cfg.MaxQuotesPerPainPoint {
					break
				}
				comment, ok := matchExample(example, corpus, used, p.cfg.QuoteMatchPrefixLen)
				if !ok {
					continue
				}
				used[comment.ID] = true
				pt.quotes = append(pt.quotes, p.newQuote(comment))
				matched++
			}
		}
	}

	if matched > 0 {
		return
	}

	// Fallback: round-robin the top comments across pain points.
	pool := topComments(corpus, p.cfg.FallbackQuotePoolSize)
	for i, comment := range pool {
		pt := points[i%len(points)]
		if len(pt.quotes) >= p.cfg.MaxQuotesPerPainPoint {
			continue
		}
		pt.quotes = append(pt.quotes, p.newQuote(comment))
	}
}

func (p *Pipeline) newQuote(c hackernews.Comment) quoteSpec {
	return quoteSpec{
		text:      htmltext.Truncate(c.Text, p.cfg.MaxQuoteLen),
		author:    c.Author,
		upvotes:   c.Points,
		permalink: c.Permalink,
	}
}

// matchExample finds the first unused comment containing the example's
// leading prefix. Prefix matching tolerates the model paraphrasing or
// truncating the tail of a quote.
func matchExample(example string, corpus []hackernews.Comment, used map[string]bool, prefixLen int) (hackernews.Comment, bool) {
	prefix := strings.TrimSpace(htmltext.Strip(example))
	if prefix == "" {
		return hackernews.Comment{}, false
	}
	runes := []rune(prefix)
	if len(runes) > prefixLen {
		prefix = string(runes[:prefixLen])
	}

	for _, c := range corpus {
		if used[c.ID] {
			continue
		}
		if strings.Contains(c.Text, prefix) {
			return c, true
		}
	}
	return hackernews.Comment{}, false
}

// topComments returns up to n comments ordered by upvotes descending.
func topComments(corpus []hackernews.Comment, n int) []hackernews.Comment {
	sorted := make([]hackernews.Comment, len(corpus))
	copy(sorted, corpus)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Points > sorted[j].Points
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// tagFrequency returns the distinct primary tags of the stories ordered
// by story count descending, preference order breaking ties, plus the
// per-tag counts.
func tagFrequency(stories []hackernews.Story) ([]string, map[string]int) {
	counts := make(map[string]int)
	for _, s := range stories {
		counts[models.PrimaryTag(s.Tags)]++
	}

	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.SliceStable(tags, func(i, j int) bool {
		if counts[tags[i]] != counts[tags[j]] {
			return counts[tags[i]] > counts[tags[j]]
		}
		return models.TagPriority(tags[i]) < models.TagPriority(tags[j])
	})
	return tags, counts
}

// orderedSourceTags is tagFrequency without the counts, for the summary row.
func orderedSourceTags(stories []hackernews.Story) []string {
	tags, _ := tagFrequency(stories)
	return tags
}

// finalize assembles the completed result and warms the cache. Cache
// failures are reported to the caller but never fail the search.
func (p *Pipeline) finalize(ctx context.Context, row *ent.Search) error {
	result, err := p.results.Assemble(ctx, row.ID)
	if err != nil {
		return fmt.Errorf("failed to assemble result: %w", err)
	}

	if p.cache != nil {
		fp := fingerprint.Compute(row.Topic, row.Tags, string(row.TimeRange), row.MinUpvotes, string(row.SortBy))
		if err := p.cache.SetResult(ctx, row.ID, fp, result); err != nil {
			return err
		}
	}

	if p.jobLogs != nil {
		p.jobLogs.Info(ctx, row.ID, "Search completed", map[string]interface{}{
			"total_posts":    result.TotalPostsConsidered,
			"total_comments": result.TotalCommentsConsidered,
			"total_mentions": result.TotalMentions,
			"pain_points":    len(result.PainPoints),
			"quotes":         len(result.Quotes),
		})
	}
	return nil
}

// sleepCtx pauses for d unless the context ends first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (p *Pipeline) publishProgress(ctx context.Context, searchID, phase string, payload events.PhaseProgressPayload) {
	if p.publisher == nil {
		return
	}
	if err := p.publisher.PublishPhaseProgress(ctx, searchID, phase, payload); err != nil {
		slog.Warn("Failed to publish progress event", "search_id", searchID, "phase", phase, "error", err)
	}
}
