package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abuammar/academy/internal/quiz"
)

func TestDefault_Loads(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "v1.0.0", c.Version())
	assert.Equal(t, "AbuAmmar Tech Academy", c.Academy())
	require.Equal(t, 4, c.Len())

	ids := make([]string, 0, c.Len())
	for _, course := range c.Courses() {
		ids = append(ids, course.ID)
	}
	assert.Equal(t, []string{"data-analysis", "data-entry", "it-basics", "troubleshooting"}, ids)
}

func TestDefault_ITBasics(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	course, err := c.Get("it-basics")
	require.NoError(t, err)
	assert.Equal(t, "IT Basics", course.Title)
	require.Len(t, course.Lessons, 2)
	assert.Equal(t, "Hardware vs Software", course.Lessons[0].Title)
	assert.Equal(t, 70, course.Quiz.PassMark)
	require.Len(t, course.Quiz.Questions, 1)
	assert.Equal(t, 1, course.Quiz.Questions[0].AnswerIndex)
	assert.Equal(t, []string{"MS Excel", "Keyboard", "Linux"}, course.Quiz.Questions[0].Options)
}

func TestGet_NotFound(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	_, err = c.Get("underwater-basket-weaving")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCourses_ReturnsClone(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	courses := c.Courses()
	courses[0].Title = "changed"

	again := c.Courses()
	assert.Equal(t, "Data Analysis", again[0].Title)
}

func TestAccessors_DeepCopyNestedData(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	course, err := c.Get("it-basics")
	require.NoError(t, err)
	course.Lessons[0].Title = "changed"
	course.Quiz.Questions[0].AnswerIndex = 0
	course.Quiz.Questions[0].Options[1] = "changed"

	again, err := c.Get("it-basics")
	require.NoError(t, err)
	assert.Equal(t, "Hardware vs Software", again.Lessons[0].Title)
	assert.Equal(t, 1, again.Quiz.Questions[0].AnswerIndex)
	assert.Equal(t, "Keyboard", again.Quiz.Questions[0].Options[1])

	listed := c.Courses()
	listed[0].Quiz.Questions[0].Options[0] = "X"
	assert.NotEqual(t, "X", c.Courses()[0].Quiz.Questions[0].Options[0])
}

func TestNew_CopiesDocument(t *testing.T) {
	doc := Document{
		Version: "v1.0.0",
		Courses: []Course{{
			ID:      "one",
			Title:   "One",
			Lessons: []Lesson{{Title: "L1"}},
			Quiz: quiz.Quiz{PassMark: 50, Questions: []quiz.Question{
				{Prompt: "p", Options: []string{"a", "b"}, AnswerIndex: 0},
			}},
		}},
	}
	c, err := New(doc)
	require.NoError(t, err)

	doc.Courses[0].Lessons[0].Title = "changed"
	doc.Courses[0].Quiz.Questions[0].Options[0] = "changed"

	course, err := c.Get("one")
	require.NoError(t, err)
	assert.Equal(t, "L1", course.Lessons[0].Title)
	assert.Equal(t, "a", course.Quiz.Questions[0].Options[0])
}

const validYAML = `
version: v1.2.0
courses:
  - id: one
    title: One
    lessons: [{title: L1, content: c}]
    quiz:
      pass_mark: 50
      questions:
        - {prompt: p, options: [a, b], answer: 0}
`

func TestParse_YAMLDefaultsAcademy(t *testing.T) {
	c, err := Parse([]byte(validYAML), "x.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultAcademy, c.Academy())
	assert.Equal(t, 1, c.Len())
}

func TestParse_JSON(t *testing.T) {
	doc := `{"version":"v1.0.0","academy":"Night School","courses":[
	  {"id":"one","title":"One","lessons":[],"quiz":{"pass_mark":100,
	   "questions":[{"prompt":"p","options":["a","b"],"answer":1}]}}]}`
	c, err := Parse([]byte(doc), "catalog.JSON")
	require.NoError(t, err)
	assert.Equal(t, "Night School", c.Academy())
}

func TestParse_SchemaRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown field", strings.Replace(validYAML, "title: One", "title: One\n    price: 10", 1)},
		{"pass mark over 100", strings.Replace(validYAML, "pass_mark: 50", "pass_mark: 150", 1)},
		{"single option", strings.Replace(validYAML, "options: [a, b]", "options: [a]", 1)},
		{"bad id", strings.Replace(validYAML, "id: one", "id: One Course", 1)},
		{"missing version", strings.Replace(validYAML, "version: v1.2.0", "", 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), "c.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "catalog schema")
		})
	}
}

func TestParse_SemanticProblems(t *testing.T) {
	doc := `
version: "1.0"
courses:
  - id: dup
    title: A
    lessons: []
    quiz: {pass_mark: 70, questions: []}
  - id: dup
    title: B
    lessons: []
    quiz:
      pass_mark: 70
      questions:
        - {prompt: p, options: [a, b], answer: 2}
`
	_, err := Parse([]byte(doc), "c.yml")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.ErrorIs(t, err, quiz.ErrInvalidQuiz)

	msg := err.Error()
	assert.Contains(t, msg, "not a semantic version")
	assert.Contains(t, msg, `duplicate course id: "dup"`)
	assert.Contains(t, msg, "no questions")
	assert.Contains(t, msg, "answer index 2 out of range")
}

func TestParse_UnsupportedMajor(t *testing.T) {
	doc := strings.Replace(validYAML, "v1.2.0", "v2.0.0", 1)
	_, err := Parse([]byte(doc), "c.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
	assert.NotErrorIs(t, err, quiz.ErrInvalidQuiz)
}

func TestParse_MultipleYAMLDocuments(t *testing.T) {
	_, err := Parse([]byte(validYAML+"\n---\n"+validYAML), "c.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple documents")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "courses.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v1.2.0", c.Version())

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read catalog")
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	def, err := Default()
	require.NoError(t, err)
	assert.Same(t, def, c)
}
