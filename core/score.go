package core

import (
	"strings"

	"github.com/huangsam/sdrfbench/schema"
)

// ScoreOptions configures a scoring run. Zero values fall back to the
// benchmark defaults, so callers only set what they need.
type ScoreOptions struct {
	GroupKey   string         // grouping column, defaults to schema.DefaultGroupKey
	Columns    []string       // scored columns, defaults to solution header minus reserved
	Threshold  float64        // inclusive similarity threshold, defaults to schema.DefaultThreshold
	Similarity SimilarityFunc // defaults to Similarity
}

func (o *ScoreOptions) applyDefaults(solution *schema.Table) {
	if o.GroupKey == "" {
		o.GroupKey = schema.DefaultGroupKey
	}
	if len(o.Columns) == 0 {
		o.Columns = schema.ScoredColumns(solution.Columns)
	}
	if o.Threshold == 0 {
		o.Threshold = schema.DefaultThreshold
	}
	if o.Similarity == nil {
		o.Similarity = Similarity
	}
}

// ScoreTables computes the grouped set F1 between a solution table and a
// submission table.
//
// Rows are partitioned by the group key, and for every (group, column) pair
// the distinct values of each side form a set. The union of the two sets is
// clustered by transitive similarity at the threshold, and each cluster with
// members from both sides counts as one recovered entity. The final score is
// the arithmetic mean of per-pair F1 over all scorable pairs.
//
// Pairs whose solution set is empty after filtering are excluded: they
// appear in the report for diagnostics but carry no weight in the mean.
// Groups present only in the submission are ignored outright.
func ScoreTables(solution, submission *schema.Table, opts ScoreOptions) (*schema.ScoreReport, error) {
	opts.applyDefaults(solution)

	required := append([]string{opts.GroupKey}, opts.Columns...)
	if missing := solution.MissingColumns(required); len(missing) > 0 {
		return nil, &schema.SchemaError{Table: "solution", Missing: missing}
	}
	if missing := submission.MissingColumns(required); len(missing) > 0 {
		return nil, &schema.SchemaError{Table: "submission", Missing: missing}
	}

	solGroups, groupKeys := solution.GroupBy(opts.GroupKey)
	if len(groupKeys) == 0 {
		return nil, &schema.EmptyInputError{Reason: "solution table has no groups"}
	}
	subGroups, _ := submission.GroupBy(opts.GroupKey)

	report := &schema.ScoreReport{
		GroupKey:  opts.GroupKey,
		Threshold: opts.Threshold,
		Columns:   opts.Columns,
		Groups:    len(groupKeys),
	}

	// Iterate groups in sorted order and columns in header order so the
	// floating-point summation order is reproducible.
	var sum float64
	for _, group := range groupKeys {
		for _, column := range opts.Columns {
			pair := scorePair(group, column, solGroups[group], subGroups[group], opts)
			report.Pairs = append(report.Pairs, pair)
			if pair.Excluded {
				report.ExcludedPairs++
				continue
			}
			report.ScoredPairs++
			sum += pair.F1
		}
	}

	if report.ScoredPairs == 0 {
		return nil, &schema.EmptyInputError{Reason: "no scorable pairs after exclusions"}
	}
	report.Score = sum / float64(report.ScoredPairs)
	return report, nil
}

// scorePair scores a single (group, column) pair.
func scorePair(group, column string, solRows, subRows []schema.Row, opts ScoreOptions) schema.PairScore {
	solSet := valueSet(solRows, column)
	subSet := valueSet(subRows, column)

	pair := schema.PairScore{
		Group:            group,
		Column:           column,
		SolutionValues:   solSet,
		SubmissionValues: subSet,
	}
	if len(solSet) == 0 {
		pair.Excluded = true
		return pair
	}

	members := buildMembers(solSet, subSet)
	clusters := clusterMembers(members, opts.Threshold, opts.Similarity)

	var tp, solClusters, subClusters int
	for _, c := range clusters {
		if c.hasSolution {
			solClusters++
		}
		if c.hasSubmission {
			subClusters++
		}
		if c.hasSolution && c.hasSubmission {
			tp++
		}
	}

	pair.Clusters = len(clusters)
	pair.TruePositives = tp
	if subClusters > 0 {
		pair.Precision = float64(tp) / float64(subClusters)
	}
	pair.Recall = float64(tp) / float64(solClusters)
	if pair.Precision+pair.Recall > 0 {
		pair.F1 = 2 * pair.Precision * pair.Recall / (pair.Precision + pair.Recall)
	}
	return pair
}

// valueSet projects rows onto one column and returns the distinct trimmed
// values, dropping empty cells and the "Not Applicable" sentinel. Order of
// first appearance is preserved.
func valueSet(rows []schema.Row, column string) []string {
	var values []string
	for _, row := range rows {
		v := strings.TrimSpace(row[column])
		if v == "" || v == schema.NotApplicable {
			continue
		}
		values = append(values, v)
	}
	return schema.UniqueOrdered(values)
}

// buildMembers merges the two value sets into clustering members. A value
// present in both sets becomes a single member flagged on both sides, which
// guarantees it forms a recovered entity on its own.
func buildMembers(solSet, subSet []string) []member {
	index := make(map[string]int, len(solSet)+len(subSet))
	var members []member
	for _, v := range solSet {
		index[v] = len(members)
		members = append(members, member{value: v, inSolution: true})
	}
	for _, v := range subSet {
		if i, ok := index[v]; ok {
			members[i].inSubmission = true
			continue
		}
		index[v] = len(members)
		members = append(members, member{value: v, inSubmission: true})
	}
	return members
}
