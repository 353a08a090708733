// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/delverhq/delver/ent/report"
	"github.com/delverhq/delver/ent/researchdata"
	"github.com/delverhq/delver/ent/researchquery"
	"github.com/delverhq/delver/ent/researchsession"
	"github.com/delverhq/delver/ent/schema"
	"github.com/delverhq/delver/ent/searchhistory"
	"github.com/delverhq/delver/ent/source"
	"github.com/delverhq/delver/ent/user"
	"github.com/delverhq/delver/ent/usersetting"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	reportFields := schema.Report{}.Fields()
	_ = reportFields
	// reportDescWordCount is the schema descriptor for word_count field.
	reportDescWordCount := reportFields[5].Descriptor()
	// report.DefaultWordCount holds the default value on creation for the word_count field.
	report.DefaultWordCount = reportDescWordCount.Default.(int)
	// reportDescCreatedAt is the schema descriptor for created_at field.
	reportDescCreatedAt := reportFields[6].Descriptor()
	// report.DefaultCreatedAt holds the default value on creation for the created_at field.
	report.DefaultCreatedAt = reportDescCreatedAt.Default.(func() time.Time)
	researchdataFields := schema.ResearchData{}.Fields()
	_ = researchdataFields
	// researchdataDescRelevanceScore is the schema descriptor for relevance_score field.
	researchdataDescRelevanceScore := researchdataFields[8].Descriptor()
	// researchdata.DefaultRelevanceScore holds the default value on creation for the relevance_score field.
	researchdata.DefaultRelevanceScore = researchdataDescRelevanceScore.Default.(float64)
	// researchdataDescCreatedAt is the schema descriptor for created_at field.
	researchdataDescCreatedAt := researchdataFields[9].Descriptor()
	// researchdata.DefaultCreatedAt holds the default value on creation for the created_at field.
	researchdata.DefaultCreatedAt = researchdataDescCreatedAt.Default.(func() time.Time)
	researchqueryFields := schema.ResearchQuery{}.Fields()
	_ = researchqueryFields
	// researchqueryDescResultCount is the schema descriptor for result_count field.
	researchqueryDescResultCount := researchqueryFields[3].Descriptor()
	// researchquery.DefaultResultCount holds the default value on creation for the result_count field.
	researchquery.DefaultResultCount = researchqueryDescResultCount.Default.(int)
	// researchqueryDescCreatedAt is the schema descriptor for created_at field.
	researchqueryDescCreatedAt := researchqueryFields[4].Descriptor()
	// researchquery.DefaultCreatedAt holds the default value on creation for the created_at field.
	researchquery.DefaultCreatedAt = researchqueryDescCreatedAt.Default.(func() time.Time)
	researchsessionFields := schema.ResearchSession{}.Fields()
	_ = researchsessionFields
	// researchsessionDescCreatedAt is the schema descriptor for created_at field.
	researchsessionDescCreatedAt := researchsessionFields[5].Descriptor()
	// researchsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	researchsession.DefaultCreatedAt = researchsessionDescCreatedAt.Default.(func() time.Time)
	searchhistoryFields := schema.SearchHistory{}.Fields()
	_ = searchhistoryFields
	// searchhistoryDescResultCount is the schema descriptor for result_count field.
	searchhistoryDescResultCount := searchhistoryFields[3].Descriptor()
	// searchhistory.DefaultResultCount holds the default value on creation for the result_count field.
	searchhistory.DefaultResultCount = searchhistoryDescResultCount.Default.(int)
	// searchhistoryDescCreatedAt is the schema descriptor for created_at field.
	searchhistoryDescCreatedAt := searchhistoryFields[4].Descriptor()
	// searchhistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	searchhistory.DefaultCreatedAt = searchhistoryDescCreatedAt.Default.(func() time.Time)
	sourceFields := schema.Source{}.Fields()
	_ = sourceFields
	// sourceDescRelevanceScore is the schema descriptor for relevance_score field.
	sourceDescRelevanceScore := sourceFields[6].Descriptor()
	// source.DefaultRelevanceScore holds the default value on creation for the relevance_score field.
	source.DefaultRelevanceScore = sourceDescRelevanceScore.Default.(float64)
	// sourceDescAccessedAt is the schema descriptor for accessed_at field.
	sourceDescAccessedAt := sourceFields[7].Descriptor()
	// source.DefaultAccessedAt holds the default value on creation for the accessed_at field.
	source.DefaultAccessedAt = sourceDescAccessedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescRole is the schema descriptor for role field.
	userDescRole := userFields[3].Descriptor()
	// user.DefaultRole holds the default value on creation for the role field.
	user.DefaultRole = userDescRole.Default.(string)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	usersettingFields := schema.UserSetting{}.Fields()
	_ = usersettingFields
	// usersettingDescUpdatedAt is the schema descriptor for updated_at field.
	usersettingDescUpdatedAt := usersettingFields[3].Descriptor()
	// usersetting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usersetting.DefaultUpdatedAt = usersettingDescUpdatedAt.Default.(func() time.Time)
	// usersetting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usersetting.UpdateDefaultUpdatedAt = usersettingDescUpdatedAt.UpdateDefault.(func() time.Time)
}
