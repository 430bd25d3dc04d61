package engine

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`\[([^\[\]]*)\]`)

// ParsedTask is the result of reading one task entry line.
type ParsedTask struct {
	Text   string
	Skills []SkillType
	Daily  bool
}

// ParseTaskLine splits a raw entry line into the task text and its skill
// tags. Tags are a comma-separated list in square brackets anywhere in the
// line; unknown tag names are dropped. A standalone "-e" token marks the
// task as a daily. At most maxSkills tags are kept.
func ParseTaskLine(line string, maxSkills int) ParsedTask {
	var p ParsedTask

	for _, m := range tagPattern.FindAllStringSubmatch(line, -1) {
		for _, raw := range strings.Split(m[1], ",") {
			t, ok := ParseSkill(strings.TrimSpace(raw))
			if !ok {
				continue
			}
			if containsSkill(p.Skills, t) {
				continue
			}
			p.Skills = append(p.Skills, t)
		}
	}
	if len(p.Skills) > maxSkills {
		p.Skills = p.Skills[:maxSkills]
	}

	rest := tagPattern.ReplaceAllString(line, " ")
	var words []string
	for _, w := range strings.Fields(rest) {
		if w == "-e" {
			p.Daily = true
			continue
		}
		words = append(words, w)
	}
	p.Text = strings.Join(words, " ")
	return p
}

// ParseTaskLine reads one entry line with the service's skill cap.
func (s *Service) ParseTaskLine(line string) ParsedTask {
	return ParseTaskLine(line, s.bal.MaxTaskSkills)
}

func containsSkill(skills []SkillType, t SkillType) bool {
	for _, s := range skills {
		if s == t {
			return true
		}
	}
	return false
}
