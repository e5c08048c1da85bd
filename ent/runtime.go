// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/painscope/painscope/ent/aianalysis"
	"github.com/painscope/painscope/ent/apiusage"
	"github.com/painscope/painscope/ent/joblog"
	"github.com/painscope/painscope/ent/painpoint"
	"github.com/painscope/painscope/ent/painpointquote"
	"github.com/painscope/painscope/ent/schema"
	"github.com/painscope/painscope/ent/search"
	"github.com/painscope/painscope/ent/searchevent"
	"github.com/painscope/painscope/ent/searchsummary"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	aianalysisFields := schema.AiAnalysis{}.Fields()
	_ = aianalysisFields
	// aianalysisDescSchemaVersion is the schema descriptor for schema_version field.
	aianalysisDescSchemaVersion := aianalysisFields[4].Descriptor()
	// aianalysis.DefaultSchemaVersion holds the default value on creation for the schema_version field.
	aianalysis.DefaultSchemaVersion = aianalysisDescSchemaVersion.Default.(int)
	// aianalysisDescTokensUsed is the schema descriptor for tokens_used field.
	aianalysisDescTokensUsed := aianalysisFields[6].Descriptor()
	// aianalysis.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	aianalysis.DefaultTokensUsed = aianalysisDescTokensUsed.Default.(int)
	// aianalysisDescCreatedAt is the schema descriptor for created_at field.
	aianalysisDescCreatedAt := aianalysisFields[7].Descriptor()
	// aianalysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	aianalysis.DefaultCreatedAt = aianalysisDescCreatedAt.Default.(func() time.Time)
	apiusageFields := schema.ApiUsage{}.Fields()
	_ = apiusageFields
	// apiusageDescTokensUsed is the schema descriptor for tokens_used field.
	apiusageDescTokensUsed := apiusageFields[2].Descriptor()
	// apiusage.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	apiusage.DefaultTokensUsed = apiusageDescTokensUsed.Default.(int)
	// apiusageDescEstimatedCostUsd is the schema descriptor for estimated_cost_usd field.
	apiusageDescEstimatedCostUsd := apiusageFields[3].Descriptor()
	// apiusage.DefaultEstimatedCostUsd holds the default value on creation for the estimated_cost_usd field.
	apiusage.DefaultEstimatedCostUsd = apiusageDescEstimatedCostUsd.Default.(float64)
	// apiusageDescCreatedAt is the schema descriptor for created_at field.
	apiusageDescCreatedAt := apiusageFields[4].Descriptor()
	// apiusage.DefaultCreatedAt holds the default value on creation for the created_at field.
	apiusage.DefaultCreatedAt = apiusageDescCreatedAt.Default.(func() time.Time)
	joblogFields := schema.JobLog{}.Fields()
	_ = joblogFields
	// joblogDescCreatedAt is the schema descriptor for created_at field.
	joblogDescCreatedAt := joblogFields[4].Descriptor()
	// joblog.DefaultCreatedAt holds the default value on creation for the created_at field.
	joblog.DefaultCreatedAt = joblogDescCreatedAt.Default.(func() time.Time)
	painpointFields := schema.PainPoint{}.Fields()
	_ = painpointFields
	// painpointDescMentionsCount is the schema descriptor for mentions_count field.
	painpointDescMentionsCount := painpointFields[4].Descriptor()
	// painpoint.DefaultMentionsCount holds the default value on creation for the mentions_count field.
	painpoint.DefaultMentionsCount = painpointDescMentionsCount.Default.(int)
	// painpointDescCreatedAt is the schema descriptor for created_at field.
	painpointDescCreatedAt := painpointFields[6].Descriptor()
	// painpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	painpoint.DefaultCreatedAt = painpointDescCreatedAt.Default.(func() time.Time)
	painpointquoteFields := schema.PainPointQuote{}.Fields()
	_ = painpointquoteFields
	// painpointquoteDescUpvotes is the schema descriptor for upvotes field.
	painpointquoteDescUpvotes := painpointquoteFields[4].Descriptor()
	// painpointquote.DefaultUpvotes holds the default value on creation for the upvotes field.
	painpointquote.DefaultUpvotes = painpointquoteDescUpvotes.Default.(int)
	// painpointquoteDescCreatedAt is the schema descriptor for created_at field.
	painpointquoteDescCreatedAt := painpointquoteFields[6].Descriptor()
	// painpointquote.DefaultCreatedAt holds the default value on creation for the created_at field.
	painpointquote.DefaultCreatedAt = painpointquoteDescCreatedAt.Default.(func() time.Time)
	searchFields := schema.Search{}.Fields()
	_ = searchFields
	// searchDescTags is the schema descriptor for tags field.
	searchDescTags := searchFields[2].Descriptor()
	// search.DefaultTags holds the default value on creation for the tags field.
	search.DefaultTags = searchDescTags.Default.([]string)
	// searchDescMinUpvotes is the schema descriptor for min_upvotes field.
	searchDescMinUpvotes := searchFields[6].Descriptor()
	// search.DefaultMinUpvotes holds the default value on creation for the min_upvotes field.
	search.DefaultMinUpvotes = searchDescMinUpvotes.Default.(int)
	// searchDescRetryCount is the schema descriptor for retry_count field.
	searchDescRetryCount := searchFields[8].Descriptor()
	// search.DefaultRetryCount holds the default value on creation for the retry_count field.
	search.DefaultRetryCount = searchDescRetryCount.Default.(int)
	// searchDescCreatedAt is the schema descriptor for created_at field.
	searchDescCreatedAt := searchFields[12].Descriptor()
	// search.DefaultCreatedAt holds the default value on creation for the created_at field.
	search.DefaultCreatedAt = searchDescCreatedAt.Default.(func() time.Time)
	searcheventFields := schema.SearchEvent{}.Fields()
	_ = searcheventFields
	// searcheventDescCreatedAt is the schema descriptor for created_at field.
	searcheventDescCreatedAt := searcheventFields[5].Descriptor()
	// searchevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	searchevent.DefaultCreatedAt = searcheventDescCreatedAt.Default.(func() time.Time)
	searchsummaryFields := schema.SearchSummary{}.Fields()
	_ = searchsummaryFields
	// searchsummaryDescTotalPosts is the schema descriptor for total_posts field.
	searchsummaryDescTotalPosts := searchsummaryFields[1].Descriptor()
	// searchsummary.DefaultTotalPosts holds the default value on creation for the total_posts field.
	searchsummary.DefaultTotalPosts = searchsummaryDescTotalPosts.Default.(int)
	// searchsummaryDescTotalComments is the schema descriptor for total_comments field.
	searchsummaryDescTotalComments := searchsummaryFields[2].Descriptor()
	// searchsummary.DefaultTotalComments holds the default value on creation for the total_comments field.
	searchsummary.DefaultTotalComments = searchsummaryDescTotalComments.Default.(int)
	// searchsummaryDescTotalMentions is the schema descriptor for total_mentions field.
	searchsummaryDescTotalMentions := searchsummaryFields[3].Descriptor()
	// searchsummary.DefaultTotalMentions holds the default value on creation for the total_mentions field.
	searchsummary.DefaultTotalMentions = searchsummaryDescTotalMentions.Default.(int)
	// searchsummaryDescSourceTags is the schema descriptor for source_tags field.
	searchsummaryDescSourceTags := searchsummaryFields[4].Descriptor()
	// searchsummary.DefaultSourceTags holds the default value on creation for the source_tags field.
	searchsummary.DefaultSourceTags = searchsummaryDescSourceTags.Default.([]string)
	// searchsummaryDescCreatedAt is the schema descriptor for created_at field.
	searchsummaryDescCreatedAt := searchsummaryFields[5].Descriptor()
	// searchsummary.DefaultCreatedAt holds the default value on creation for the created_at field.
	searchsummary.DefaultCreatedAt = searchsummaryDescCreatedAt.Default.(func() time.Time)
}
