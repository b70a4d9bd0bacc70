package textgen

// featureCategories fixes the draw order over the feature taxonomy.
var featureCategories = []string{"camera", "battery", "display", "performance"}

var features = map[string][]string{
	"camera":      {"camera", "photo quality", "picture quality", "camera system", "zoom", "night mode"},
	"battery":     {"battery life", "battery", "charging", "battery performance", "all-day battery"},
	"display":     {"display", "screen", "screen quality", "brightness", "colors", "AMOLED"},
	"performance": {"performance", "speed", "processor", "multitasking", "gaming", "smooth"},
}

var positiveReviewTemplates = []string{
	"Just got my {product}! The {feature} is amazing. Highly recommend!",
	"Loving my new {product}. The {feature} exceeded my expectations.",
	"Best phone I've owned. The {feature} is outstanding.",
	"Upgraded to {product} and couldn't be happier. {feature} is incredible.",
	"The {product} is fantastic. {feature} works perfectly.",
}

var neutralReviewTemplates = []string{
	"The {product} is decent. {feature} is okay but nothing special.",
	"Got the {product}. {feature} is average, meets basic needs.",
	"It's a solid phone. {feature} is acceptable for the price.",
	"{product} is fine. {feature} could be better but it works.",
}

var negativeReviewTemplates = []string{
	"Disappointed with {product}. The {feature} is not as advertised.",
	"Expected more from {product}. {feature} is underwhelming.",
	"Not happy with my {product}. {feature} has issues.",
	"The {product} fell short. {feature} needs improvement.",
}

var positiveTitles = []string{
	"Excellent phone!",
	"Love it!",
	"Highly recommend",
	"Best purchase ever",
	"Amazing device",
}

var neutralTitles = []string{
	"It's okay",
	"Decent phone",
	"Average experience",
	"Meets expectations",
}

var negativeTitles = []string{
	"Disappointed",
	"Not worth it",
	"Expected better",
	"Has issues",
}

// additionalComments are appended to 4-5 star review text.
var additionalComments = []string{
	" The {feature} really stands out.",
	" I use it daily and {feature} performs well.",
	" Compared to my old phone, {feature} is much better.",
	" The {feature} is exactly what I needed.",
	" Overall, {feature} meets my needs.",
}

var allPros = []string{
	"camera", "battery", "display", "performance", "design",
	"build quality", "fast charging", "storage", "5G connectivity",
}

var allCons = []string{
	"price", "weight", "no headphone jack", "bloatware",
	"camera in low light", "battery drain", "heating issues",
}

var socialPositiveTemplates = []string{
	"Just unboxed my {product}! 📱 The {feature} is 🔥 #Nova #smartphone",
	"Loving my new {product}! {feature} is next level 💯",
	"{product} camera is insane! 📸 Best photos ever #NovaPrime",
	"Switched to {product} and wow! {feature} is amazing ✨",
}

var socialNegativeTemplates = []string{
	"Not impressed with {product} 😞 {feature} disappointing",
	"{product} {feature} not living up to the hype...",
	"Regretting my {product} purchase. {feature} issues 😤",
}

var socialNeutralTemplates = []string{
	"Got the {product}. {feature} is decent 👍",
	"Using {product} for a week now. {feature} is okay",
	"{product} review: {feature} meets expectations",
}

var positiveHashtags = []string{"#love", "#amazing", "#recommended", "#bestphone"}
var negativeHashtags = []string{"#disappointed", "#notgood", "#issues"}
var neutralHashtags = []string{"#review", "#newphone", "#techreview"}
