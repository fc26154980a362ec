package catalog

import "strings"

// StaticCatalog is an in-memory Catalog backed by a fixed problem list.
type StaticCatalog struct {
	problems []Problem
	byID     map[string]int
	topics   []string
	byTopic  map[string]int
}

// NewStatic builds a StaticCatalog from the given problems.
func NewStatic(problems []Problem) *StaticCatalog {
	c := &StaticCatalog{
		problems: problems,
		byID:     make(map[string]int, len(problems)),
		byTopic:  make(map[string]int),
	}
	for i, p := range problems {
		c.byID[p.ID] = i
		if _, seen := c.byTopic[p.Topic]; !seen {
			c.topics = append(c.topics, p.Topic)
		}
		c.byTopic[p.Topic]++
	}
	return c
}

// Default returns the built-in problem catalog.
func Default() *StaticCatalog {
	return NewStatic(builtinProblems)
}

func (c *StaticCatalog) Problems() []Problem {
	out := make([]Problem, len(c.problems))
	copy(out, c.problems)
	return out
}

func (c *StaticCatalog) Get(id string) (Problem, error) {
	i, ok := c.byID[id]
	if !ok {
		return Problem{}, &ErrUnknownProblem{ID: id}
	}
	return c.problems[i], nil
}

func (c *StaticCatalog) Topics() []string {
	out := make([]string, len(c.topics))
	copy(out, c.topics)
	return out
}

func (c *StaticCatalog) CountInTopic(topic string) int {
	return c.byTopic[topic]
}

func matchesSearch(p Problem, search string) bool {
	s := strings.ToLower(search)
	return strings.Contains(strings.ToLower(p.Title), s) ||
		strings.Contains(strings.ToLower(p.Description), s)
}

// builtinProblems is the seed catalog served when no external problem
// source is configured.
var builtinProblems = []Problem{
	{
		ID:           "two-sum",
		Title:        "Two Sum",
		Topic:        "Arrays",
		Difficulty:   Easy,
		Description:  "Given an array of integers and a target, return the indices of the two numbers that add up to the target.",
		InputFormat:  "First line: space-separated integers. Second line: the target integer.",
		OutputFormat: "Two indices separated by a space.",
		Constraints:  []string{"2 <= n <= 10^4", "Exactly one valid answer exists"},
		SampleInput:  "2 7 11 15\n9",
		SampleOutput: "0 1",
	},
	{
		ID:           "reverse-string",
		Title:        "Reverse a String",
		Topic:        "Strings",
		Difficulty:   Easy,
		Description:  "Reverse the characters of the given string in place.",
		SampleInput:  "hello",
		SampleOutput: "olleh",
	},
	{
		ID:           "max-subarray",
		Title:        "Maximum Subarray",
		Topic:        "Arrays",
		Difficulty:   Medium,
		Description:  "Find the contiguous subarray with the largest sum and return that sum.",
		SampleInput:  "-2 1 -3 4 -1 2 1 -5 4",
		SampleOutput: "6",
	},
	{
		ID:           "valid-parentheses",
		Title:        "Valid Parentheses",
		Topic:        "Stacks",
		Difficulty:   Easy,
		Description:  "Determine whether the input string of brackets is balanced.",
		SampleInput:  "()[]{}",
		SampleOutput: "true",
	},
	{
		ID:           "climbing-stairs",
		Title:        "Climbing Stairs",
		Topic:        "Dynamic Programming",
		Difficulty:   Easy,
		Description:  "Count the distinct ways to climb a staircase of n steps taking 1 or 2 steps at a time.",
		SampleInput:  "3",
		SampleOutput: "3",
	},
	{
		ID:           "merge-intervals",
		Title:        "Merge Intervals",
		Topic:        "Arrays",
		Difficulty:   Medium,
		Description:  "Merge all overlapping intervals and return the non-overlapping result.",
		SampleInput:  "[1,3] [2,6] [8,10] [15,18]",
		SampleOutput: "[1,6] [8,10] [15,18]",
	},
	{
		ID:           "binary-tree-paths",
		Title:        "Binary Tree Paths",
		Topic:        "Trees",
		Difficulty:   Medium,
		Description:  "Return all root-to-leaf paths of a binary tree.",
	},
	{
		ID:           "word-ladder",
		Title:        "Word Ladder",
		Topic:        "Graphs",
		Difficulty:   Hard,
		Description:  "Find the length of the shortest transformation sequence from beginWord to endWord.",
	},
	{
		ID:           "n-queens",
		Title:        "N-Queens",
		Topic:        "Recursion",
		Difficulty:   Hard,
		Description:  "Place n queens on an n x n chessboard so that no two queens attack each other.",
		SampleInput:  "4",
		SampleOutput: "2",
	},
	{
		ID:           "fibonacci-memo",
		Title:        "Fibonacci with Memoization",
		Topic:        "Recursion",
		Difficulty:   Easy,
		Description:  "Compute the nth Fibonacci number using memoized recursion.",
		SampleInput:  "10",
		SampleOutput: "55",
	},
}
