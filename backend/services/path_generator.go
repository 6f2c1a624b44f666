package services

import (
	"fmt"
	"math"
	"strings"
)

// Topic knowledge base for common subjects.
var topicKnowledgeBase = map[string][]string{
	"python": {
		"Variables & Data Types", "Control Flow (If/Else, Loops)", "Functions & Modules",
		"Data Structures (Lists, Dicts)", "File Handling", "OOP Concepts",
		"Error Handling", "Libraries (NumPy, Pandas)", "Web Scraping Basics",
		"API Basics", "Database Interaction", "Final Project",
	},
	"react": {
		"JSX & Components", "Props & State", "Hooks (useState, useEffect)",
		"Event Handling", "Forms & Validation", "React Router",
		"Context API", "Redux Basics", "API Integration",
		"Performance Optimization", "Testing", "Deployment",
	},
	"java": {
		"Syntax & Variables", "Control Structures", "OOP: Classes & Objects",
		"Inheritance & Polymorphism", "Interfaces & Abstract Classes", "Collections Framework",
		"Exception Handling", "File I/O", "Multithreading",
		"JDBC Basics", "Spring Boot Intro", "Final Project",
	},
	"javascript": {
		"Variables (let/const)", "Data Types & Operators", "Functions (Arrow functions)",
		"DOM Manipulation", "Events", "Async/Await & Promises",
		"ES6+ Features", "Fetch API", "Modules",
		"Local Storage", "Classes", "Project Work",
	},
}

type ScheduleEntry struct {
	Day      int    `json:"day"`
	Phase    string `json:"phase"`
	Topic    string `json:"topic"`
	Hours    int    `json:"hours"`
	Activity string `json:"activity"`
}

type LearningPath struct {
	CourseName  string          `json:"course_name"`
	TotalDays   int             `json:"total_days"`
	HoursPerDay int             `json:"hours_per_day"`
	TotalHours  int             `json:"total_hours"`
	Schedule    []ScheduleEntry `json:"schedule"`
}

// GenerateLearningPath builds a day-by-day schedule for a topic. Days split
// into three phases: 30% Fundamentals, 40% Deep Dive, remainder Advanced &
// Projects (never negative). Each day maps its fractional position within
// the phase onto that phase's third of the topic list. Deterministic.
func GenerateLearningPath(topic string, days, hoursPerDay int) *LearningPath {
	baseTopics, ok := topicKnowledgeBase[strings.ToLower(topic)]
	if !ok {
		baseTopics = make([]string, 12)
		for i := range baseTopics {
			baseTopics[i] = fmt.Sprintf("%s Fundamentals %d", topic, i+1)
		}
	}

	phase1Days := int(math.Ceil(float64(days) * 0.3))
	phase2Days := int(math.Ceil(float64(days) * 0.4))
	phase3Days := days - phase1Days - phase2Days
	if phase3Days < 0 {
		phase3Days = 0
	}

	n := len(baseTopics)
	schedule := make([]ScheduleEntry, 0, days)
	currentDay := 1

	appendPhase := func(phaseDays int, phase string, topicStart, topicEnd int, activity string) {
		for i := 0; i < phaseDays; i++ {
			idx := topicStart + int(float64(i)/float64(phaseDays)*float64(topicEnd-topicStart))
			if idx >= n {
				idx = n - 1
			}
			schedule = append(schedule, ScheduleEntry{
				Day:      currentDay,
				Phase:    phase,
				Topic:    baseTopics[idx],
				Hours:    hoursPerDay,
				Activity: activity,
			})
			currentDay++
		}
	}

	appendPhase(phase1Days, "Fundamentals", 0, n/3, "Read docs & practice basic syntax")
	appendPhase(phase2Days, "Deep Dive", n/3, 2*n/3, "Build small components/scripts")
	appendPhase(phase3Days, "Advanced & Projects", 2*n/3, n, "Final Project implementation")

	return &LearningPath{
		CourseName:  topic,
		TotalDays:   days,
		HoursPerDay: hoursPerDay,
		TotalHours:  days * hoursPerDay,
		Schedule:    schedule,
	}
}
