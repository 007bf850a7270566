package stats

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iudanet/progressboard/internal/models"
)

// exactCategories maps well-known skill types to their category.
var exactCategories = map[string]string{
	"skill_go":     "Go",
	"skill_js":     "JavaScript",
	"skill_html":   "HTML",
	"skill_css":    "CSS",
	"skill_dom":    "DOM",
	"skill_sql":    "SQL",
	"skill_rust":   "Rust",
	"skill_python": "Python",
	"skill_java":   "Java",
	"skill_cpp":    "C++",
	"skill_csharp": "C#",
}

type categoryRule struct {
	match    func(string) bool
	category string
}

func suffix(s string) func(string) bool {
	return func(t string) bool { return strings.HasSuffix(t, s) }
}

func contains(s string) func(string) bool {
	return func(t string) bool { return strings.Contains(t, s) }
}

// Порядок правил важен: первое совпадение выигрывает
var categoryRules = []categoryRule{
	{match: suffix("_go"), category: "Go"},
	{match: func(t string) bool { return t == "skill_js" || strings.Contains(t, "javascript") }, category: "JavaScript"},
	{match: suffix("_html"), category: "HTML"},
	{match: suffix("_css"), category: "CSS"},
	{match: suffix("_dom"), category: "DOM"},
	{match: suffix("_sql"), category: "SQL"},
	{match: suffix("_rust"), category: "Rust"},
	{match: contains("algo"), category: "Algorithms"},
	{match: contains("back"), category: "Backend"},
	{match: contains("front"), category: "Frontend"},
	{match: contains("docker"), category: "DevOps"},
	{match: contains("git"), category: "Version Control"},
}

// Skills returns the top skills by level. Transactions are grouped by type
// and each group keeps its highest amount. Skill rows carry no path, so no
// path filter applies.
func (a *Aggregator) Skills(txs []models.Transaction) []models.Skill {
	index := make(map[string]int, len(txs))
	skills := make([]models.Skill, 0, len(txs))

	for _, tx := range txs {
		level := tx.Amount.InexactFloat64()
		if i, ok := index[tx.Type]; ok {
			if level > skills[i].Level {
				skills[i].Level = level
			}
			continue
		}

		index[tx.Type] = len(skills)
		skills = append(skills, models.Skill{
			Type:     tx.Type,
			Name:     FormatSkillName(strings.Replace(tx.Type, models.SkillTypePrefix, "", 1)),
			Category: CategorizeSkill(tx.Type),
			Level:    level,
			ObjectID: tx.ObjectID,
		})
	}

	slices.SortStableFunc(skills, func(x, y models.Skill) int {
		switch {
		case x.Level > y.Level:
			return -1
		case x.Level < y.Level:
			return 1
		default:
			return 0
		}
	})

	if len(skills) > a.topN {
		skills = skills[:a.topN]
	}
	return skills
}

// FormatSkillName turns "prog_back-end" into "Prog Back End".
func FormatSkillName(name string) string {
	if name == "" {
		return "Unknown Skill"
	}

	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	words := strings.Fields(name)
	for i, w := range words {
		words[i] = capitalize(strings.ToLower(w))
	}
	return strings.Join(words, " ")
}

// CategorizeSkill maps a raw skill type to a display category. Exact names
// are checked first, then suffix and substring rules, then the capitalized
// second underscore segment. Unrelated types may share a category.
func CategorizeSkill(skillType string) string {
	if c, ok := exactCategories[skillType]; ok {
		return c
	}

	lower := strings.ToLower(skillType)
	for _, rule := range categoryRules {
		if rule.match(lower) {
			return rule.category
		}
	}

	if parts := strings.Split(lower, "_"); len(parts) > 1 && parts[1] != "" {
		return capitalize(parts[1])
	}
	return "Other"
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
