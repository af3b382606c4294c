package docs

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/etnz/assetreturns/scenario"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// scenarioBlock is the info string of code blocks holding a complete scenario.
const scenarioBlock = "yaml scenario"

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every .md file is listed.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	listed := strings.Join(topicsInReadme, ",")
	for _, topic := range all {
		if !strings.Contains(","+listed+",", ","+topic+",") {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
	if len(all) != len(topicsInReadme) {
		t.Errorf("readme.md lists %d topics, there are %d", len(topicsInReadme), len(all))
	}
}

func TestGetTopic_All(t *testing.T) {
	got, err := GetTopic("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, title := range []string{"# Scenario", "# Mortgages", "# Taxes", "# Returns"} {
		if !strings.Contains(got, title) {
			t.Errorf("all topics miss %q", title)
		}
	}
	if _, err := GetTopic("nothing"); err == nil {
		t.Error("GetTopic(nothing) should fail")
	}
}

func TestScenarioBlocks(t *testing.T) {
	// Every scenario documented is a valid one.
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for _, file := range files {
		for _, b := range parseMarkdown(t, file) {
			count++
			t.Run(file, func(t *testing.T) {
				s, err := scenario.Decode(strings.NewReader(b.Content))
				if err != nil {
					t.Fatalf("%s:%d: invalid scenario: %v", b.File, b.Line, err)
				}
				if _, err := s.Build(nil); err != nil {
					t.Errorf("%s:%d: cannot build scenario: %v", b.File, b.Line, err)
				}
			})
		}
	}
	if count == 0 {
		t.Error("no scenario block found")
	}
}

// Block represents a fenced code block in the markdown file.
type Block struct {
	Content string
	File    string
	Line    int
}

// parseMarkdown returns the scenario blocks of a markdown file.
func parseMarkdown(t *testing.T, file string) []*Block {
	t.Helper()

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var blocks []*Block
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		if string(fcb.Info.Segment.Value(content)) != scenarioBlock {
			return ast.WalkContinue, nil
		}
		var blockContent strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			blockContent.Write(line.Value(content))
		}
		blocks = append(blocks, &Block{
			Content: blockContent.String(),
			File:    file,
			Line:    lineNumber(content, fcb.Info.Segment.Start),
		})
		return ast.WalkContinue, nil
	})
	return blocks
}

// lineNumber computes the line number of an offset in source.
func lineNumber(source []byte, offset int) int {
	return bytes.Count(source[:offset], []byte{'\n'}) + 1
}
