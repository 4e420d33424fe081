package server

// DefaultTriggerRules returns the built-in auto-reply table. The rules are
// static configuration: evaluated in this order, first match wins.
func DefaultTriggerRules() []TriggerRule {
	return []TriggerRule{
		{
			Pattern: `\b(weather|forecast|temperature|rain|snow|sun|storm|cloud|wind|humidity|forecasting|forecasted|climate|barometer|precipitation)\b`,
			Replies: []string{
				"Need a forecast? Check Google Weather! ☁️",
				"Weather changes fast! Try BBC Weather! 🌦️",
				"Want to know today's temperature? Just ask! 🌡️",
				"Curious about the weather? Look it up on Weather.com! 🌤️",
				"Planning an outing? Don't forget to check AccuWeather! 🌧️",
				"Wondering if it's going to rain? Check Weather Underground! 🌦️",
				"Need a weather update? Try the Weather Channel! 🌞",
				"Want to see the forecast? Check out your local news station! 🌩️",
				"Is it snowing? Find out on Snow-Forecast.com! ❄️",
				"Looking for the latest weather news? Try MeteoGroup! 🌪️",
			},
		},
		{
			Pattern: `\b(sports|sport|score|scoring|match|game|games|team|teams|football|tennis|ping-pong|volleyball|swimming|basketball|cricket|rugby|baseball|hockey|boxing|golf|athletics|soccer|championship|olympics|track|field)\b`,
			Replies: []string{
				"Looking for the latest sports news? Check ESPN or Sky Sports! 🏅",
				"Want to know the score? Try FlashScore or Livescore! 🏆",
				"Interested in sports updates? Check out BBC Sport or Yahoo Sports!",
				"Need to know the match schedule? Try the official league websites!",
				"Want to catch a game? Try streaming on DAZN or NBC Sports!",
			},
		},
		{
			Pattern: `\b(time|clock|hour|minute|second|watch|alarm|schedule|deadline|timer|timezone|sunrise|sunset|moment|clockwise|countdown)\b`,
			Replies: []string{
				"Check your device's clock ⏰!",
				"Time flies! What do you need it for? 🕰️",
				"Looking for the time? It's always now!",
				"Curious about the time? Look at the wall! 🕒",
				"Time is precious! Make every second count! ⏳",
				"Need the current time? Try World Clock! 🕑",
				"Want to know the exact time? Check Time.is! 🕔",
				"Looking for a timer? Try your phone's built-in clock! ⏲️",
				"Want to set an alarm? Use your alarm clock! 🕓",
				"Wondering what time it is? Just ask! 🕟",
			},
		},
		{
			Pattern: `\b(food|restaurant|recipe|meal|nutrition|cook|dine|eating|cooking|ingredient|menu|gourmet|dish|mealprep|foodie|vegetarian|vegan|bakery|snack)\b`,
			Replies: []string{
				"Hungry? Check out recipes on AllRecipes! 🍔",
				"Looking for a restaurant? Try Yelp or Zomato! 🍽️",
				"Need a quick meal idea? Check Tasty or Food Network!",
				"Want to order food? Try UberEats or DoorDash! 🍕",
				"Curious about food nutrition? Check MyFitnessPal or CalorieKing!",
			},
		},
		{
			Pattern: `\b(hello|hi|hey|greetings|hi there|hey there|hello there|good day|sup|hiya|g'day|howdy|yo|greetings friend|what's up)\b`,
			Replies: []string{
				"Hey there! 😊 How can I help?",
				"Hello! Hope you're having a great day!",
				"Hi! What's on your mind?",
				"Greetings! How can I assist you today?",
				"Hey! Ready to chat?",
				"Hiya! What can I do for you?",
				"Hello there! Need some help?",
				"Hey! How's it going?",
				"Hi! What's up?",
				"Good day! How can I be of service?",
			},
		},
		{
			Pattern: `\b(fitness|workout|yoga|exercise|health|gym|strength|cardio|training|running|crossfit|stretching|fit|fitnessjourney|healthyliving|wellness|recovery|pushup|squat|weightlifting)\b`,
			Replies: []string{
				"Want to stay fit? Try a workout on Nike Training Club or Fitbit! 🏋️‍♂️",
				"Looking for fitness tips? Check out bodybuilding.com or Men's Health!",
				"Need a yoga session? Try Yoga with Adriene on YouTube!",
				"Want to track your runs? Use Strava or Runkeeper! 🏃",
				"Need a fitness plan? Try MyFitnessPal or JEFIT!",
			},
		},
		{
			Pattern: `\b(bye|goodbye|see you|later|take care|farewell|catch you later|peace out|see ya|good night|have a good day|until next time|talk soon|adios|ciao)\b`,
			Replies: []string{
				"Goodbye! Have a wonderful day! 👋",
				"See you soon! Take care!",
				"Farewell! Hope to chat again!",
				"Bye! Stay safe and take care!",
				"Adios! Looking forward to our next conversation!",
				"See you later! Have a great day!",
				"Goodbye! Don't be a stranger!",
				"Bye! Until next time!",
				"Take care! See you soon!",
				"Bye-bye! Have a fantastic day!",
			},
		},
		{
			Pattern: `\b(travel|trip|vacation|hotel|flight|journey|destination|tour|tripadvisor|holiday|airport|plane|explore|adventure|getaway|cruise|backpacking|wanderlust|roadtrip)\b`,
			Replies: []string{
				"Planning a trip? Check out TripAdvisor or Lonely Planet! ✈️",
				"Looking for travel deals? Try Expedia or Skyscanner!",
				"Need a hotel booking? Check Booking.com or Hotels.com! 🏨",
				"Want to find local attractions? Check Google Maps or Yelp!",
				"Curious about travel advisories? Visit the government travel site!",
			},
		},
		{
			Pattern: `\b(help|support|assist|aid|guide|tips|assist me|help me|need help|can you help|support me|guide me)\b`,
			Replies: []string{
				"I'm here to help! What do you need assistance with?",
				"How can I assist you today?",
				"Help is on the way! What do you need?",
				"Need a hand? I'm here for you!",
				"How can I be of service?",
				"What can I do for you?",
				"Need help? I'm ready!",
				"How can I assist you?",
				"Looking for support? I'm here!",
				"Need support? Just ask!",
			},
		},
		{
			Pattern: `\b(finance|money|budget|investment|stock|loan|bank|wealth|income|savings|interest|financial|credit|debt|funds|tax|financialplanning|financialadvisor)\b`,
			Replies: []string{
				"Want to manage your money? Try Mint or YNAB! 💰",
				"Looking for investment tips? Check out Investopedia or Motley Fool!",
				"Need a budget planner? Try EveryDollar or Goodbudget!",
				"Want to track your expenses? Use PocketGuard or Wally! 💵",
				"Curious about the stock market? Check Bloomberg or CNBC!",
			},
		},
		{
			Pattern: `\b(joke|funny|humor|laugh|comedy|pun|hilarious|laughter|chuckle|giggle|wit|sarcasm|silly|jovial|lighthearted)\b`,
			Replies: []string{
				"Why did the scarecrow win an award? Because he was outstanding in his field! 😆",
				"What do you call fake spaghetti? An impasta! 🍝",
				"Why don't skeletons fight each other? They don't have the guts! 😂",
				"Want to hear a joke? Why don't scientists trust atoms? Because they make up everything! 🧪",
				"Looking for a laugh? Here's one: Why did the bicycle fall over? It was two-tired! 🚲",
				"Why did the computer go to the doctor? Because it had a virus! 🖥️",
				"How do you organize a space party? You planet! 🪐",
				"Why don't some couples go to the gym? Because some relationships don't work out! 💔",
				"What did the ocean say to the beach? Nothing, it just waved! 🌊",
				"Why don't eggs tell jokes? They'd crack each other up! 🥚",
			},
		},
		{
			Pattern: `\b(health|doctor|mental|fitness|medical|wellness|therapy|workout|gym|nutrition|exercise|recovery|healthcare|medication|treatment)\b`,
			Replies: []string{
				"Want health tips? Check WebMD or Mayo Clinic! 🏥",
				"Looking for healthy recipes? Try EatingWell or Healthline!",
				"Need mental health support? Check BetterHelp or Talkspace! 💬",
				"Want to track your health? Use Apple Health or Google Fit!",
				"Curious about medical news? Visit MedlinePlus or HealthDay!",
			},
		},
		{
			Pattern: `\b(news|update|headlines|breaking|current|report|headline|bulletin|alert|today|coverage|reporting)\b`,
			Replies: []string{
				"Want the latest news? Check out Google News or BBC News! 📰",
				"Looking for updates? Try CNN or The Guardian!",
				"Stay informed with the latest headlines on Reuters!",
				"Catch up on the news with NY Times or The Washington Post!",
				"Get the latest updates on Al Jazeera or Sky News!",
				"Need breaking news? Check Fox News or NBC News!",
				"Want to stay updated? Try ABC News or CBS News!",
				"Looking for top stories? Check out Bloomberg or Financial Times!",
				"Interested in global news? Try DW News or France 24!",
				"Looking for tech news? Visit TechCrunch or Wired!",
			},
		},
		{
			Pattern: `\b(education|study|learn|course|university|school|degree|student|studyguide|exam|class|learning|academic|scholar|tutor|textbook)\b`,
			Replies: []string{
				"Want to learn something new? Check out Coursera or Udemy! 🎓",
				"Looking for online courses? Try edX or Khan Academy!",
				"Need study resources? Check Quizlet or Chegg! 📚",
				"Want to improve your skills? Try LinkedIn Learning or Skillshare!",
				"Curious about college tips? Visit CollegeBoard or Niche!",
			},
		},
		{
			Pattern: `\b(music|song|listen|album|band|playlist|concert|melody|rhythm|lyrics|artist|instrument|musician|composer|musicvideo|tune)\b`,
			Replies: []string{
				"Music is life! 🎵 Try Spotify!",
				"Want to discover new tunes? Try Apple Music!",
				"Listening to music is therapy! Check YouTube Music!",
				"Need a music fix? Amazon Music has you covered!",
				"Tune in to Pandora for some great tracks!",
				"Want to listen to new songs? Try SoundCloud!",
				"Looking for classics? Try iHeartRadio!",
				"Need a playlist for your mood? Check Deezer!",
				"Want to explore indie music? Try Bandcamp!",
				"Looking for live radio? Try TuneIn!",
			},
		},
		{
			Pattern: `\b(technology|tech|gadget|software|programming|coding|developer|innovation|AI|app|device|startup|electronics|robotics|web|cybersecurity)\b`,
			Replies: []string{
				"Want tech news? Check TechCrunch or Wired! 🖥️",
				"Looking for gadget reviews? Try CNET or The Verge!",
				"Need software tips? Check How-To Geek or Lifehacker! 💻",
				"Want to stay updated on AI? Visit OpenAI or AI News!",
				"Curious about programming? Check Stack Overflow or GitHub!",
			},
		},
		{
			Pattern: `\b(movie|film|watch|cinema|flick|stream|show|episode|theater|binge|blockbuster|director|actor|comedy|drama)\b`,
			Replies: []string{
				"Looking for a good movie? Check IMDb or Netflix recommendations! 🎬",
				"Need a movie suggestion? Try Rotten Tomatoes!",
				"Want to watch something? Hulu and Disney+ have great choices!",
				"In the mood for a film? Amazon Prime Video is a great option!",
				"Watch the latest flicks on HBO Max or Peacock!",
				"Need a film recommendation? Try Fandango!",
				"Looking for movie reviews? Check out Metacritic!",
				"Want to stream movies? Try Vudu!",
				"Interested in documentaries? Visit CuriosityStream!",
				"Want to catch up on TV shows? Try Showtime or Starz!",
			},
		},
		{
			Pattern: `\b(fashion|style|clothing|outfit|trend|accessory|wear|shoes|apparel|beauty|dress|chic|model|runway)\b`,
			Replies: []string{
				"Want fashion tips? Check Vogue or GQ! 👗",
				"Looking for style inspiration? Try Pinterest or Instagram!",
				"Need outfit ideas? Check Lookbook or Polyvore!",
				"Want to shop online? Try ASOS or Zara! 🛍️",
				"Curious about fashion trends? Visit Fashionista or Who What Wear!",
			},
		},
		{
			Pattern: `\b(quote|inspire|motivate|wisdom|motto|encourage|success|believe|dream|achievement|goal|hope|positivity|ambition)\b`,
			Replies: []string{
				"\"Believe you can and you're halfway there.\" – Theodore Roosevelt",
				"\"Your time is limited, so don't waste it living someone else's life.\" – Steve Jobs",
				"\"The only limit to our realization of tomorrow is our doubts of today.\" – FDR",
				"\"The best way to predict the future is to create it.\" – Peter Drucker",
				"\"Success is not the key to happiness. Happiness is the key to success.\" – Albert Schweitzer",
				"\"The journey of a thousand miles begins with one step.\" – Lao Tzu",
				"\"You miss 100% of the shots you don't take.\" – Wayne Gretzky",
				"\"Hardships often prepare ordinary people for an extraordinary destiny.\" – C.S. Lewis",
				"\"Don't watch the clock; do what it does. Keep going.\" – Sam Levenson",
				"\"The only way to do great work is to love what you do.\" – Steve Jobs",
			},
		},
		{
			Pattern: `\b(literature|book|reading|novel|author|fiction|story|library|poetry|chapter|paper|bookworm|bookstore|literary)\b`,
			Replies: []string{
				"Want book recommendations? Check Goodreads or BookBub! 📚",
				"Looking for eBooks? Try Kindle or Project Gutenberg!",
				"Need a book summary? Check SparkNotes or CliffsNotes!",
				"Want to join a book club? Try Book Riot or Reader's Circle!",
				"Curious about bestsellers? Visit NY Times Best Sellers or Amazon!",
			},
		},
		{
			Pattern: `\b(programming|code|developer|coding|debug|software|algorithm|tech|python|javascript|html|css|computer|open-source)\b`,
			Replies: []string{
				"Coding is fun! Need help? Try Stack Overflow or GitHub! 💻",
				"Programming is an art! Keep practicing!",
				"Want to learn coding? Check out freeCodeCamp!",
				"Developers unite! Visit CodePen for inspiration!",
				"Need coding tips? Try W3Schools or MDN Web Docs!",
				"Looking for coding challenges? Try HackerRank or LeetCode!",
				"Want to join a coding community? Try Reddit's r/programming!",
				"Need a code editor? Try Visual Studio Code or Sublime Text!",
				"Interested in open-source projects? Visit GitHub or GitLab!",
				"Learning a new language? Try Codecademy or Coursera!",
			},
		},
		{
			Pattern: `\b(diy|craft|home|project|improvement|build|decorate|remodel|handmade|repair|ideas|design|tutorial)\b`,
			Replies: []string{
				"Want DIY ideas? Check Pinterest or DIY Network! 🔨",
				"Looking for craft projects? Try Craftsy or Instructables!",
				"Need home improvement tips? Check This Old House or Home Depot!",
				"Want to build something? Try Make: Magazine or Woodworking!",
				"Curious about gardening? Visit Gardeners.com or RHS!",
			},
		},
		{
			Pattern: `\b(random|surprise|guess|funny|odd|weird|fact|trivia|bizarre|interesting)\b`,
			Replies: []string{
				"Here's something random: Did you know honey never spoils? 🍯",
				"Fun fact: Bananas are berries, but strawberries aren't! 🍌🍓",
				"Surprise! A group of flamingos is called a 'flamboyance'! 🦩",
				"Guess what? Octopuses have three hearts! 🐙",
				"Random thought: A day on Venus is longer than a year on Venus! 🌌",
				"Did you know? The Eiffel Tower can be 15 cm taller during the summer! 🗼",
				"Fun fact: A bolt of lightning contains enough energy to toast 100,000 slices of bread! ⚡",
				"Did you know? The shortest war in history lasted 38 minutes! 🕒",
				"Random fact: A single strand of Spaghetti is called a \"Spaghetto\" 🍝",
				"Guess what? There are more stars in the universe than grains of sand on all the world's beaches!",
			},
		},
		{
			Pattern: `\b(pets|dog|cat|animal|training|care|adopt|petlover|veterinary|health|species|petshop|petcare)\b`,
			Replies: []string{
				"Want pet care tips? Check PetMD or ASPCA! 🐶",
				"Looking for pet products? Try Chewy or Petco!",
				"Need pet training advice? Check The Spruce Pets or Cesar's Way!",
				"Want to adopt a pet? Try Petfinder or Adopt-a-Pet! 🐱",
				"Curious about pet health? Visit VCA Hospitals or Banfield!",
			},
		},
		{
			Pattern: `\b(gaming|game|esports|score|tournament|play|console|gamer|platform|level|pc|xbox|switch|mobile)\b`,
			Replies: []string{
				"Want gaming news? Check IGN or GameSpot! 🎮",
				"Looking for game reviews? Try Metacritic or Kotaku!",
				"Need game guides? Check GameFAQs or Prima Games!",
				"Want to watch gaming streams? Try Twitch or YouTube Gaming!",
				"Curious about esports? Visit ESL or Major League Gaming!",
			},
		},
		{
			Pattern: `\b(home|decor|interior|furniture|design|apartment|livingroom|style|remodel|house|modern|organization|renovation)\b`,
			Replies: []string{
				"Want home decor ideas? Check Houzz or Apartment Therapy! 🏡",
				"Looking for interior design tips? Try Elle Decor or Architectural Digest!",
				"Need furniture shopping? Check IKEA or Wayfair!",
				"Want to organize your space? Try The Container Store!",
				"Curious about home improvement? Visit Lowe's or Home Depot!",
			},
		},
		{
			Pattern: `\b(parenting|baby|child|family|kids|motherhood|fatherhood|mom|dad|school|children|health|pregnancy|education)\b`,
			Replies: []string{
				"Want parenting tips? Check BabyCenter or Parenting.com! 👶",
				"Looking for child development info? Try CDC or KidsHealth!",
				"Need parenting support? Check What to Expect or NCT!",
				"Want to find activities for kids? Try PBS Kids or Highlights!",
				"Curious about family health? Visit FamilyDoctor.org or WebMD!",
			},
		},
		{
			Pattern: `\b(beauty|skin|hair|makeup|cosmetic|skincare|beautycare|haircare|glam|beautytips|makeuptutorial)\b`,
			Replies: []string{
				"Want beauty tips? Check Allure or Glamour! 💄",
				"Looking for skincare advice? Try Dermstore or Paula's Choice!",
				"Need makeup tutorials? Check YouTube or Sephora!",
				"Want to find beauty products? Try Ulta or Beauty Bay!",
				"Curious about hair care? Visit NaturallyCurly or Hair.com!",
			},
		},
		{
			Pattern: `\b(automobile|car|vehicle|maintenance|reviews|auto|mechanic|engine|repair|transport|gas|fuel|sedan|motor)\b`,
			Replies: []string{
				"Want car reviews? Check Edmunds or Car and Driver! 🚗",
				"Looking for car maintenance tips? Try AutoZone or Pep Boys!",
				"Need to buy a car? Check Kelley Blue Book or Autotrader!",
				"Want to sell your car? Try CarMax or Cars.com!",
				"Curious about car news? Visit MotorTrend or Top Gear!",
			},
		},
		{
			Pattern: `\b(history|museum|event|archive|world|timeline|civilization|heritage|ancient|chronicles|past|historylesson|documentary)\b`,
			Replies: []string{
				"Want to learn about history? Check History.com or Smithsonian! 📜",
				"Looking for historical documentaries? Try Netflix or History Vault!",
				"Need history books? Check Goodreads or Amazon!",
				"Want to visit historical sites? Try National Geographic or TripAdvisor!",
				"Curious about world history? Visit BBC History or World History Encyclopedia!",
			},
		},
		{
			Pattern: `\b(science|experiment|biology|space|research|lab|scientific|physics|chemistry|discovery|technology|environment|astronomy)\b`,
			Replies: []string{
				"Want science news? Check Scientific American or Nature! 🔬",
				"Looking for science experiments? Try Science Buddies or Exploratorium!",
				"Need science facts? Check National Geographic or Science Alert!",
				"Want to watch science videos? Try YouTube or Discovery Channel!",
				"Curious about space? Visit NASA or Space.com!",
			},
		},
		{
			Pattern: `\b(art|artist|gallery|painting|inspiration|drawing|sculpture|modernart|artistic|museum|design|visual)\b`,
			Replies: []string{
				"Want art inspiration? Check DeviantArt or Behance! 🎨",
				"Looking for art tutorials? Try YouTube or Skillshare!",
				"Need art supplies? Check Blick or Michaels!",
				"Want to visit art galleries? Try Google Arts & Culture or ArtNet!",
				"Curious about famous artists? Visit MoMA or The Art Story!",
			},
		},
	}
}
