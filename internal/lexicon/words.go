package lexicon

// wordsByEmotion is the built-in lexicon. Every word is lowercase and belongs
// to exactly one emotion.
var wordsByEmotion = map[string][]string{
	"Happy": {
		"happy", "joy", "joyful", "glad", "cheerful", "delight", "delighted", "pleased",
		"content", "smile", "laugh", "fun", "enjoy", "wonderful", "great", "love",
		"lovely", "grateful", "thankful", "proud", "hope", "hopeful", "celebrate",
		"excited", "awesome", "fantastic", "peaceful", "relaxed", "blessed", "good",
	},
	"Angry": {
		"angry", "anger", "mad", "furious", "rage", "hate", "annoy", "annoyed",
		"irritate", "irritated", "frustrate", "frustrated", "outrage", "outraged",
		"resent", "hostile", "bitter", "disgust", "disgusted", "pissed", "fume",
		"livid", "offend", "offended", "yell", "scream", "argue", "fight",
	},
	"Surprise": {
		"surprise", "surprised", "shock", "shocked", "amaze", "amazed", "astonish",
		"astonished", "wow", "unexpected", "sudden", "suddenly", "incredible",
		"unbelievable", "stun", "stunned", "startle", "startled", "whoa", "omg",
	},
	"Sad": {
		"sad", "unhappy", "depress", "depressed", "lonely", "alone", "miserable",
		"grief", "grieve", "cry", "tear", "tears", "sorrow", "heartbroken", "hurt",
		"loss", "lost", "miss", "gloomy", "down", "upset", "disappoint",
		"disappointed", "regret", "hopeless", "empty", "awful", "terrible", "bad",
	},
	"Fear": {
		"fear", "afraid", "scare", "scared", "anxious", "anxiety", "worry", "worried",
		"nervous", "terrify", "terrified", "frighten", "frightened", "panic", "dread",
		"tense", "uneasy", "threat", "danger", "horror", "phobia", "stress", "stressed",
	},
}

func builtinWords() map[string]string {
	words := make(map[string]string)
	for _, label := range Vocabulary {
		for _, w := range wordsByEmotion[label] {
			words[w] = label
		}
	}
	return words
}
