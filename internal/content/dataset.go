package content

import (
	"time"

	"github.com/writermorphosis/writermorphosis-server/internal/domain"
)

func dateOf(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func stampOf(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("content: bad seed timestamp " + value)
	}
	return t
}

// DefaultDataset returns the built-in catalog used when no dataset file is
// configured. The IDs and counts here are referenced from tests; changing
// them means updating the fixtures too.
func DefaultDataset() Dataset {
	return Dataset{
		Categories: []domain.Category{
			{ID: "1", Name: "Creative Writing", Slug: "creative-writing", Count: 12},
			{ID: "2", Name: "Poetry", Slug: "poetry", Count: 8},
			{ID: "3", Name: "Fiction", Slug: "fiction", Count: 15},
			{ID: "4", Name: "Non-Fiction", Slug: "non-fiction", Count: 10},
			{ID: "5", Name: "Writing Tips", Slug: "writing-tips", Count: 20},
			{ID: "6", Name: "Book Reviews", Slug: "book-reviews", Count: 7},
		},
		Tags: []domain.Tag{
			{ID: "1", Name: "Inspiration", Slug: "inspiration", Count: 25},
			{ID: "2", Name: "Storytelling", Slug: "storytelling", Count: 18},
			{ID: "3", Name: "Character Development", Slug: "character-development", Count: 12},
			{ID: "4", Name: "Plot", Slug: "plot", Count: 14},
			{ID: "5", Name: "Grammar", Slug: "grammar", Count: 9},
			{ID: "6", Name: "Publishing", Slug: "publishing", Count: 11},
			{ID: "7", Name: "Editing", Slug: "editing", Count: 16},
			{ID: "8", Name: "Writing Process", Slug: "writing-process", Count: 22},
		},
		CurrentUser: domain.User{
			ID:         "user1",
			Name:       "Alex Johnson",
			Email:      "alex.johnson@example.com",
			Avatar:     "https://api.dicebear.com/7.x/avataaars/svg?seed=Alex",
			Bio:        "Aspiring writer passionate about storytelling and creative expression. Always learning, always writing.",
			JoinedDate: dateOf(2024, time.January, 15),
			PostsRead:  127,
			SavedPosts: []string{"1", "3", "5"},
			Following:  []string{"Sarah", "James", "Emily"},
		},
		Posts: []domain.Post{
			{
				ID:      "1",
				Title:   "The Art of Crafting Compelling Characters",
				Excerpt: "Discover the secrets to creating memorable characters that resonate with readers and drive your narrative forward.",
				Content: "Creating compelling characters is the cornerstone of great storytelling. Characters are the heart and soul of your narrative, and readers connect with stories through the people who inhabit them. In this comprehensive guide, we'll explore the fundamental techniques for developing characters that feel authentic, relatable, and unforgettable...",
				Image:   "https://images.unsplash.com/flagged/photo-1576697010739-6373b63f3204?w=1080",
				Category: "Writing Tips",
				Tags:     []string{"Character Development", "Storytelling", "Writing Process"},
				Author: domain.Author{
					Name:   "Sarah Mitchell",
					Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah",
				},
				PublishedDate: dateOf(2025, time.October, 25),
				ReadTime:      "8 min read",
				Views:         2340,
				Likes:         234,
				CommentsCount: 18,
				URL:           "https://en.wikipedia.org/wiki/Character_(arts)",
			},
			{
				ID:      "2",
				Title:   "Finding Your Unique Writing Voice",
				Excerpt: "Learn how to develop and refine your distinctive writing style that sets your work apart from others.",
				Content: "Your writing voice is your unique fingerprint in the literary world. It's what makes your work instantly recognizable and sets you apart from other writers. Developing this voice takes time, practice, and self-awareness...",
				Image:   "https://images.unsplash.com/photo-1612907260223-2c7aff7a7d3d?w=1080",
				Category: "Creative Writing",
				Tags:     []string{"Writing Process", "Inspiration"},
				Author: domain.Author{
					Name:   "James Porter",
					Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=James",
				},
				PublishedDate: dateOf(2025, time.October, 22),
				ReadTime:      "6 min read",
				Views:         1890,
				Likes:         156,
				CommentsCount: 12,
				URL:           "https://en.wikipedia.org/wiki/Writer%27s_voice",
			},
			{
				ID:      "3",
				Title:   "Mastering Dialogue: Make Your Characters Speak Naturally",
				Excerpt: "Tips and techniques for writing dialogue that sounds authentic and moves your story forward.",
				Content: "Dialogue is one of the most powerful tools in a writer's arsenal. When done well, it reveals character, advances the plot, and creates a rhythm that keeps readers engaged. However, writing natural-sounding dialogue can be challenging...",
				Image:   "https://images.unsplash.com/photo-1524758631624-e2822e304c36?w=1080",
				Category: "Writing Tips",
				Tags:     []string{"Character Development", "Storytelling", "Editing"},
				Author: domain.Author{
					Name:   "Emily Chen",
					Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Emily",
				},
				PublishedDate: dateOf(2025, time.October, 20),
				ReadTime:      "7 min read",
				Views:         3120,
				Likes:         287,
				CommentsCount: 24,
				URL:           "https://en.wikipedia.org/wiki/Dialogue_in_writing",
			},
			{
				ID:      "4",
				Title:   "The Power of Metaphor in Poetry",
				Excerpt: "Explore how metaphors can transform your poetry and create deeper emotional connections with readers.",
				Content: "Metaphors are the lifeblood of poetry. They allow us to see the world through new eyes, to connect seemingly unrelated concepts, and to express complex emotions in ways that literal language cannot...",
				Image:   "https://images.unsplash.com/photo-1614849963640-9cc74b2a826f?w=1080",
				Category: "Poetry",
				Tags:     []string{"Inspiration", "Writing Process"},
				Author: domain.Author{
					Name:   "Marcus Thompson",
					Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Marcus",
				},
				PublishedDate: dateOf(2025, time.October, 18),
				ReadTime:      "5 min read",
				Views:         1560,
				Likes:         198,
				CommentsCount: 9,
			},
			{
				ID:      "5",
				Title:   "Overcoming Writer's Block: Proven Strategies",
				Excerpt: "Practical techniques to break through creative barriers and get your writing flowing again.",
				Content: "Writer's block is a frustrating experience that every writer faces at some point. That blank page can feel insurmountable, and the pressure to create can be paralyzing. But writer's block doesn't have to derail your creative journey...",
				Image:   "https://images.unsplash.com/photo-1714974529438-77bf2c377214?w=1080",
				Category: "Writing Tips",
				Tags:     []string{"Inspiration", "Writing Process"},
				Author: domain.Author{
					Name:   "Sarah Mitchell",
					Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah",
				},
				PublishedDate: dateOf(2025, time.October, 15),
				ReadTime:      "6 min read",
				Views:         2890,
				Likes:         312,
				CommentsCount: 27,
			},
			{
				ID:      "6",
				Title:   "Building Tension in Your Novel",
				Excerpt: "Learn how to keep readers on the edge of their seats with effective pacing and conflict.",
				Content: "Tension is what keeps readers turning pages late into the night. It's the invisible thread that pulls them through your story, making them invested in the outcome. Creating and maintaining tension requires careful attention to pacing, conflict, and stakes...",
				Image:   "https://images.unsplash.com/reserve/LJIZlzHgQ7WPSh5KVTCB_Typewriter.jpg?w=1080",
				Category: "Fiction",
				Tags:     []string{"Plot", "Storytelling"},
				Author: domain.Author{
					Name:   "James Porter",
					Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=James",
				},
				PublishedDate: dateOf(2025, time.October, 12),
				ReadTime:      "9 min read",
				Views:         2145,
				Likes:         203,
				CommentsCount: 15,
			},
		},
		Comments: []domain.Comment{
			{
				ID:         "c1",
				PostID:     "1",
				UserID:     "user2",
				UserName:   "Jessica Lee",
				UserAvatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Jessica",
				Content:    "This is such a helpful guide! The section on character backstory really resonated with me. I've been struggling with making my characters feel authentic.",
				CreatedAt:  stampOf("2025-10-26T10:30:00Z"),
				Likes:      12,
			},
			{
				ID:         "c2",
				PostID:     "1",
				UserID:     "user3",
				UserName:   "Michael Brown",
				UserAvatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Michael",
				Content:    "Great article! Would love to see a follow-up on character arcs and development over multiple books.",
				CreatedAt:  stampOf("2025-10-26T14:15:00Z"),
				Likes:      8,
				Replies: []domain.Comment{
					{
						ID:         "c2r1",
						PostID:     "1",
						UserID:     "user4",
						UserName:   "Sarah Mitchell",
						UserAvatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah",
						Content:    "Thanks for the suggestion! That's definitely on my list for future articles.",
						CreatedAt:  stampOf("2025-10-26T15:20:00Z"),
						Likes:      3,
					},
				},
			},
			{
				ID:         "c3",
				PostID:     "1",
				UserID:     "user5",
				UserName:   "Emma Davis",
				UserAvatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Emma",
				Content:    "I've bookmarked this for future reference. The tips on showing vs telling are spot on!",
				CreatedAt:  stampOf("2025-10-27T09:45:00Z"),
				Likes:      15,
			},
		},
		Notifications: []domain.Notification{
			{
				ID:        "n1",
				Type:      domain.NotificationComment,
				Title:     "New comment on your saved post",
				Message:   "Jessica Lee commented on 'The Art of Crafting Compelling Characters'",
				Timestamp: stampOf("2025-10-27T10:30:00Z"),
				Read:      false,
				Image:     "https://api.dicebear.com/7.x/avataaars/svg?seed=Jessica",
				Link:      "1",
			},
			{
				ID:        "n2",
				Type:      domain.NotificationLike,
				Title:     "Your comment was liked",
				Message:   "Sarah Mitchell liked your comment",
				Timestamp: stampOf("2025-10-27T09:15:00Z"),
				Read:      false,
				Image:     "https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah",
			},
			{
				ID:        "n3",
				Type:      domain.NotificationPost,
				Title:     "New article from Sarah Mitchell",
				Message:   "The Art of Crafting Compelling Characters",
				Timestamp: stampOf("2025-10-26T08:00:00Z"),
				Read:      true,
				Image:     "https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah",
				Link:      "1",
			},
			{
				ID:        "n4",
				Type:      domain.NotificationFollow,
				Title:     "New follower",
				Message:   "James Porter started following you",
				Timestamp: stampOf("2025-10-25T16:20:00Z"),
				Read:      true,
				Image:     "https://api.dicebear.com/7.x/avataaars/svg?seed=James",
			},
			{
				ID:        "n5",
				Type:      domain.NotificationComment,
				Title:     "New reply to your comment",
				Message:   "Michael Brown replied to your comment on 'Finding Your Unique Writing Voice'",
				Timestamp: stampOf("2025-10-25T14:30:00Z"),
				Read:      true,
				Image:     "https://api.dicebear.com/7.x/avataaars/svg?seed=Michael",
			},
		},
		Quizzes: []domain.Quiz{
			{
				ID:          "q1",
				Title:       "Grammar Essentials Quiz",
				Description: "Test your knowledge of fundamental grammar rules and writing mechanics.",
				Category:    "Writing Tips",
				Difficulty:  domain.DifficultyEasy,
				Image:       "https://images.unsplash.com/photo-1456513080510-7bf3a84b82f8?w=800",
				TimeLimit:   10,
				TotalPoints: 50,
				Questions: []domain.QuizQuestion{
					{
						ID:       "q1q1",
						Question: "Which sentence uses correct punctuation?",
						Options: []string{
							"The cat sat on the mat.",
							"The cat, sat on the mat.",
							"The cat sat, on the mat.",
							"The cat sat on, the mat.",
						},
						CorrectAnswer: 0,
						Explanation:   "The first sentence uses correct punctuation with a simple period at the end.",
						Points:        10,
					},
					{
						ID:            "q1q2",
						Question:      "What is the plural form of 'criterion'?",
						Options:       []string{"Criterions", "Criteria", "Criterias", "Criterioes"},
						CorrectAnswer: 1,
						Explanation:   "'Criteria' is the correct plural form of 'criterion', which has Greek origins.",
						Points:        10,
					},
					{
						ID:            "q1q3",
						Question:      "Which word is a conjunction?",
						Options:       []string{"Quickly", "Beautiful", "But", "Running"},
						CorrectAnswer: 2,
						Explanation:   "'But' is a conjunction used to connect words, phrases, or clauses.",
						Points:        10,
					},
					{
						ID:       "q1q4",
						Question: "Identify the sentence with proper subject-verb agreement:",
						Options: []string{
							"The group of students were excited.",
							"The group of students was excited.",
							"The groups of student was excited.",
							"The groups of student were excited.",
						},
						CorrectAnswer: 1,
						Explanation:   "'Group' is a collective noun that takes a singular verb when treated as a single unit.",
						Points:        10,
					},
					{
						ID:            "q1q5",
						Question:      "What type of sentence is: 'Stop!'",
						Options:       []string{"Declarative", "Interrogative", "Imperative", "Exclamatory"},
						CorrectAnswer: 2,
						Explanation:   "An imperative sentence gives a command or makes a request.",
						Points:        10,
					},
				},
			},
			{
				ID:          "q2",
				Title:       "Character Development Mastery",
				Description: "Explore the art of creating compelling and memorable characters.",
				Category:    "Fiction",
				Difficulty:  domain.DifficultyMedium,
				Image:       "https://images.unsplash.com/photo-1516979187457-637abb4f9353?w=800",
				TimeLimit:   15,
				TotalPoints: 75,
				Questions: []domain.QuizQuestion{
					{
						ID:       "q2q1",
						Question: "What is a 'character arc'?",
						Options: []string{
							"The physical appearance of a character",
							"The transformation a character undergoes throughout the story",
							"The character's family tree",
							"The character's dialogue style",
						},
						CorrectAnswer: 1,
						Explanation:   "A character arc is the transformation or inner journey of a character over the course of a story.",
						Points:        15,
					},
					{
						ID:       "q2q2",
						Question: "Which element is NOT essential for character development?",
						Options: []string{
							"Backstory",
							"Motivation",
							"Physical appearance description",
							"Internal conflict",
						},
						CorrectAnswer: 2,
						Explanation:   "While physical appearance can be helpful, motivation, backstory, and internal conflict are more essential for deep character development.",
						Points:        15,
					},
					{
						ID:       "q2q3",
						Question: "What is a 'flat character'?",
						Options: []string{
							"A character with no physical depth",
							"A character who doesn't change throughout the story",
							"A character who lies down frequently",
							"A poorly written character",
						},
						CorrectAnswer: 1,
						Explanation:   "A flat character is one-dimensional and doesn't undergo significant change or growth.",
						Points:        15,
					},
					{
						ID:       "q2q4",
						Question: "In the 'show, don't tell' technique, which is better?",
						Options: []string{
							"Sarah was angry.",
							"Sarah slammed the door and clenched her fists.",
							"Sarah felt mad.",
							"Sarah had anger.",
						},
						CorrectAnswer: 1,
						Explanation:   "Showing emotions through actions and body language is more engaging than simply stating them.",
						Points:        15,
					},
					{
						ID:       "q2q5",
						Question: "What is an 'antagonist'?",
						Options: []string{
							"The main character of a story",
							"A character who opposes the protagonist",
							"A supporting character",
							"The narrator",
						},
						CorrectAnswer: 1,
						Explanation:   "An antagonist is a character or force that opposes the protagonist, creating conflict.",
						Points:        15,
					},
				},
			},
			{
				ID:          "q3",
				Title:       "Advanced Plot Structures",
				Description: "Master complex narrative structures and storytelling techniques.",
				Category:    "Creative Writing",
				Difficulty:  domain.DifficultyHard,
				Image:       "https://images.unsplash.com/photo-1455390582262-044cdead277a?w=800",
				TimeLimit:   20,
				TotalPoints: 100,
				Questions: []domain.QuizQuestion{
					{
						ID:       "q3q1",
						Question: "What is 'in medias res'?",
						Options: []string{
							"Starting a story at the end",
							"Starting a story in the middle of action",
							"A type of resolution",
							"A character development technique",
						},
						CorrectAnswer: 1,
						Explanation:   "'In medias res' is a Latin term meaning 'into the middle of things' - starting the narrative in the midst of action.",
						Points:        20,
					},
					{
						ID:            "q3q2",
						Question:      "In Freytag's Pyramid, what comes after the rising action?",
						Options:       []string{"Resolution", "Exposition", "Climax", "Falling action"},
						CorrectAnswer: 2,
						Explanation:   "The climax is the peak of tension in Freytag's Pyramid, occurring after the rising action.",
						Points:        20,
					},
					{
						ID:       "q3q3",
						Question: "What is a 'MacGuffin'?",
						Options: []string{
							"A Scottish character",
							"An object that drives the plot but has little intrinsic value",
							"A type of breakfast food",
							"A plot twist technique",
						},
						CorrectAnswer: 1,
						Explanation:   "A MacGuffin is a plot device that motivates characters but has little importance to the story itself.",
						Points:        20,
					},
					{
						ID:       "q3q4",
						Question: "What is 'Chekhov's Gun' principle?",
						Options: []string{
							"Every element introduced should be relevant to the plot",
							"Always include weapons in stories",
							"Russian literature techniques",
							"A character naming convention",
						},
						CorrectAnswer: 0,
						Explanation:   "Chekhov's Gun states that every element in a story must be necessary and irrelevant elements should be removed.",
						Points:        20,
					},
					{
						ID:       "q3q5",
						Question: "What narrative technique uses multiple timelines?",
						Options: []string{
							"Linear narrative",
							"Non-linear narrative",
							"First-person narrative",
							"Third-person omniscient",
						},
						CorrectAnswer: 1,
						Explanation:   "Non-linear narratives present events out of chronological order, often using multiple timelines.",
						Points:        20,
					},
				},
			},
			{
				ID:          "q4",
				Title:       "Poetry Forms & Techniques",
				Description: "Test your knowledge of various poetic forms and literary devices.",
				Category:    "Poetry",
				Difficulty:  domain.DifficultyMedium,
				Image:       "https://images.unsplash.com/photo-1471107340929-a87cd0f5b5f3?w=800",
				TimeLimit:   12,
				TotalPoints: 60,
				Questions: []domain.QuizQuestion{
					{
						ID:            "q4q1",
						Question:      "How many lines does a sonnet have?",
						Options:       []string{"12", "14", "16", "18"},
						CorrectAnswer: 1,
						Explanation:   "A traditional sonnet contains 14 lines, typically written in iambic pentameter.",
						Points:        12,
					},
					{
						ID:       "q4q2",
						Question: "What is alliteration?",
						Options: []string{
							"Repetition of vowel sounds",
							"Repetition of consonant sounds at the beginning of words",
							"Rhyming words at the end of lines",
							"Comparison using 'like' or 'as'",
						},
						CorrectAnswer: 1,
						Explanation:   "Alliteration is the repetition of initial consonant sounds in neighboring words.",
						Points:        12,
					},
					{
						ID:            "q4q3",
						Question:      "A haiku traditionally has how many syllables?",
						Options:       []string{"15", "17", "19", "21"},
						CorrectAnswer: 1,
						Explanation:   "A traditional haiku has 17 syllables arranged in a 5-7-5 pattern across three lines.",
						Points:        12,
					},
					{
						ID:       "q4q4",
						Question: "What is enjambment?",
						Options: []string{
							"A French poetry form",
							"When a sentence or phrase runs over multiple lines",
							"A rhyme scheme",
							"A type of meter",
						},
						CorrectAnswer: 1,
						Explanation:   "Enjambment occurs when a sentence or phrase continues from one line to the next without pause.",
						Points:        12,
					},
					{
						ID:       "q4q5",
						Question: "What does 'meter' refer to in poetry?",
						Options: []string{
							"The length of the poem",
							"The rhyme scheme",
							"The rhythmic structure",
							"The theme",
						},
						CorrectAnswer: 2,
						Explanation:   "Meter is the rhythmic structure of a poem, determined by the pattern of stressed and unstressed syllables.",
						Points:        12,
					},
				},
			},
		},
		Quotes: []domain.DailyQuote{
			{
				ID:       "dq1",
				Text:     "There is no greater agony than bearing an untold story inside you.",
				Author:   "Maya Angelou",
				Category: "Inspiration",
			},
			{
				ID:       "dq2",
				Text:     "You can make anything by writing.",
				Author:   "C.S. Lewis",
				Category: "Writing Process",
			},
			{
				ID:       "dq3",
				Text:     "The first draft is just you telling yourself the story.",
				Author:   "Terry Pratchett",
				Category: "Writing Process",
			},
			{
				ID:       "dq4",
				Text:     "Start writing, no matter what. The water does not flow until the faucet is turned on.",
				Author:   "Louis L'Amour",
				Category: "Inspiration",
			},
			{
				ID:       "dq5",
				Text:     "If there's a book that you want to read, but it hasn't been written yet, then you must write it.",
				Author:   "Toni Morrison",
				Category: "Inspiration",
			},
			{
				ID:       "dq6",
				Text:     "Words are, in my not-so-humble opinion, our most inexhaustible source of magic.",
				Author:   "J.K. Rowling",
				Category: "Writing Process",
			},
			{
				ID:       "dq7",
				Text:     "The scariest moment is always just before you start.",
				Author:   "Stephen King",
				Category: "Writing Process",
			},
		},
	}
}
