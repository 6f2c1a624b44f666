package services

import (
	"fmt"
	"math/rand"
	"strings"
)

// QuizQuestion is a generated question not yet tied to a course.
type QuizQuestion struct {
	Question      string `json:"question"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectOption string `json:"correct_option"`
}

var questionBank = map[string][]QuizQuestion{
	"python": {
		{Question: "What is the correct file extension for Python files?", OptionA: ".py", OptionB: ".pt", OptionC: ".pyt", OptionD: ".pth", CorrectOption: "a"},
		{Question: "Which keyword is used to create a function in Python?", OptionA: "function", OptionB: "def", OptionC: "fun", OptionD: "define", CorrectOption: "b"},
		{Question: "What is a correct syntax to output 'Hello World' in Python?", OptionA: "echo 'Hello World'", OptionB: "p('Hello World')", OptionC: "print('Hello World')", OptionD: "Console.Log('Hello World')", CorrectOption: "c"},
		{Question: "Which collection is ordered, changeable, and allows duplicate members?", OptionA: "Tuple", OptionB: "Set", OptionC: "Dictionary", OptionD: "List", CorrectOption: "d"},
		{Question: "How do you insert comments in Python code?", OptionA: "//", OptionB: "#", OptionC: "/*", OptionD: "--", CorrectOption: "b"},
		{Question: "Which operator is used for exponentiation?", OptionA: "^", OptionB: "**", OptionC: "exp", OptionD: "power", CorrectOption: "b"},
		{Question: "What is the output of: print(bool(0))?", OptionA: "True", OptionB: "False", OptionC: "None", OptionD: "Error", CorrectOption: "b"},
	},
	"react": {
		{Question: "What is the command to create a new React app?", OptionA: "npm new react-app", OptionB: "npx create-react-app", OptionC: "npm install react", OptionD: "npx new-react", CorrectOption: "b"},
		{Question: "Which hook is used to handle side effects?", OptionA: "useState", OptionB: "useEffect", OptionC: "useReducer", OptionD: "useContext", CorrectOption: "b"},
		{Question: "What syntax extension does React use?", OptionA: "XML", OptionB: "JSX", OptionC: "HTML", OptionD: "JS+", CorrectOption: "b"},
		{Question: "How do you access props in a functional component?", OptionA: "this.props", OptionB: "props argument", OptionC: "useProps()", OptionD: "getProps()", CorrectOption: "b"},
		{Question: "Which hook is used for state management?", OptionA: "useState", OptionB: "useEffect", OptionC: "useHistory", OptionD: "useRouter", CorrectOption: "a"},
		{Question: "What is the virtual DOM?", OptionA: "A direct copy of the DOM", OptionB: "A lightweight copy of the DOM", OptionC: "A database", OptionD: "A browser plugin", CorrectOption: "b"},
	},
	"java": {
		{Question: "Which data type is used to create a variable that should store text?", OptionA: "String", OptionB: "Char", OptionC: "Txt", OptionD: "string", CorrectOption: "a"},
		{Question: "How do you create a variable with the numeric value 5?", OptionA: "num x = 5", OptionB: "x = 5", OptionC: "int x = 5", OptionD: "float x = 5", CorrectOption: "c"},
		{Question: "Which method can be used to find the length of a string?", OptionA: "getSize()", OptionB: "length()", OptionC: "len()", OptionD: "getLength()", CorrectOption: "b"},
		{Question: "Which operator is used to compare two values?", OptionA: "=", OptionB: "<>", OptionC: "==", OptionD: "><", CorrectOption: "c"},
		{Question: "To declare an array in Java, define the variable type with:", OptionA: "()", OptionB: "{}", OptionC: "[]", OptionD: "<>", CorrectOption: "c"},
	},
}

// GenerateQuiz draws up to 5 random questions without replacement from the
// topic bank. Topic matching is case-insensitive with a substring fallback
// in both directions; an unknown topic yields 5 placeholder questions.
func GenerateQuiz(topic string) []QuizQuestion {
	key := strings.ToLower(topic)

	foundKey := ""
	if _, ok := questionBank[key]; ok {
		foundKey = key
	} else {
		for k := range questionBank {
			if strings.Contains(key, k) || strings.Contains(k, key) {
				foundKey = k
				break
			}
		}
	}

	if foundKey == "" {
		questions := make([]QuizQuestion, 0, 5)
		for i := 0; i < 5; i++ {
			questions = append(questions, QuizQuestion{
				Question:      fmt.Sprintf("Question %d about %s: What is the core concept?", i+1, topic),
				OptionA:       "Concept A",
				OptionB:       "Concept B",
				OptionC:       "Concept C",
				OptionD:       "Concept D",
				CorrectOption: "a",
			})
		}
		return questions
	}

	source := questionBank[foundKey]
	count := 5
	if len(source) < count {
		count = len(source)
	}

	perm := rand.Perm(len(source))
	questions := make([]QuizQuestion, 0, count)
	for _, idx := range perm[:count] {
		questions = append(questions, source[idx])
	}
	return questions
}
