package catalog

const coverURL = "https://images.unsplash.com/photo-1511379938547-c1f69419868d?w=400&h=400&fit=crop"

// Seed returns the fixed demo catalog used to initialize an empty products
// collection.
func Seed() []Product {
	return []Product{
		{
			ID: "1", Title: "The Dark Side of the Moon", Artist: "Pink Floyd",
			Genre: "Progressive Rock", Year: 1973, Price: 29.99,
			Description: "Classic progressive rock album. Magnificent sound and an iconic sleeve design.",
			Category:    "Rock", InStock: true, ImageURL: coverURL, Rating: 4.9,
			Label: "Harvest", Condition: ConditionVintage,
			Tracks: []string{"Speak to Me", "Breathe", "On the Run", "Time", "The Great Gig in the Sky", "Money", "Us and Them", "Any Colour You Like", "Brain Damage", "Eclipse"},
		},
		{
			ID: "2", Title: "Kind of Blue", Artist: "Miles Davis",
			Genre: "Jazz", Year: 1959, Price: 24.99,
			Description: "The greatest jazz album of all time. Modal jazz performed by legendary musicians.",
			Category:    "Jazz", InStock: true, ImageURL: coverURL, Rating: 4.8,
			Label: "Columbia", Condition: ConditionNew,
			Tracks: []string{"So What", "Freddie Freeloader", "Blue in Green", "All Blues", "Flamenco Sketches"},
		},
		{
			ID: "3", Title: "Abbey Road", Artist: "The Beatles",
			Genre: "Rock", Year: 1969, Price: 27.99,
			Description: "The Beatles' legendary album. The famous zebra-crossing walk became a pop-culture icon.",
			Category:    "Rock", InStock: true, ImageURL: coverURL, Rating: 4.7,
			Label: "Apple", Condition: ConditionUsed,
			Tracks: []string{"Come Together", "Something", "Maxwell's Silver Hammer", "Oh! Darling", "Octopus's Garden", "I Want You (She's So Heavy)", "Here Comes the Sun", "Because", "You Never Give Me Your Money", "Sun King", "Mean Mr. Mustard", "Polythene Pam", "She Came In Through the Bathroom Window", "Golden Slumbers", "Carry That Weight", "The End", "Her Majesty"},
		},
		{
			ID: "4", Title: "Thriller", Artist: "Michael Jackson",
			Genre: "Pop", Year: 1982, Price: 22.99,
			Description: "The best-selling album of all time. Innovative sound and groundbreaking music videos.",
			Category:    "Pop", InStock: true, ImageURL: coverURL, Rating: 4.9,
			Label: "Epic", Condition: ConditionNew,
			Tracks: []string{"Wanna Be Startin' Somethin'", "Baby Be Mine", "The Girl Is Mine", "Thriller", "Beat It", "Billie Jean", "Human Nature", "P.Y.T. (Pretty Young Thing)", "The Lady in My Life"},
		},
		{
			ID: "5", Title: "Back in Black", Artist: "AC/DC",
			Genre: "Hard Rock", Year: 1980, Price: 26.99,
			Description: "One of the best-selling rock albums in history. The band's return after the death of Bon Scott.",
			Category:    "Rock", InStock: false, ImageURL: coverURL, Rating: 4.8,
			Label: "Atlantic", Condition: ConditionUsed,
			Tracks: []string{"Hells Bells", "Shoot to Thrill", "What Do You Do for Money Honey", "Givin the Dog a Bone", "Let Me Put My Love into You", "Back in Black", "You Shook Me All Night Long", "Have a Drink on Me", "Shake a Leg", "Rock and Roll Ain't Noise Pollution"},
		},
		{
			ID: "6", Title: "The Wall", Artist: "Pink Floyd",
			Genre: "Progressive Rock", Year: 1979, Price: 31.99,
			Description: "A concept rock opera about isolation and alienation. A musical and visual masterpiece.",
			Category:    "Rock", InStock: true, ImageURL: coverURL, Rating: 4.7,
			Label: "Harvest", Condition: ConditionVintage,
			Tracks: []string{"In the Flesh?", "The Thin Ice", "Another Brick in the Wall, Part 1", "The Happiest Days of Our Lives", "Another Brick in the Wall, Part 2", "Mother", "Goodbye Blue Sky", "Empty Spaces", "Young Lust", "One of My Turns", "Don't Leave Me Now", "Another Brick in the Wall, Part 3", "Goodbye Cruel World"},
		},
		{
			ID: "7", Title: "Blue", Artist: "Joni Mitchell",
			Genre: "Folk", Year: 1971, Price: 23.99,
			Description: "A folk music icon. Honest lyrics and intricate musical arrangements.",
			Category:    "Folk", InStock: true, ImageURL: coverURL, Rating: 4.9,
			Label: "Reprise", Condition: ConditionVintage,
			Tracks: []string{"All I Want", "My Old Man", "Little Green", "Carey", "Blue", "California", "This Flight Tonight", "River", "A Case of You", "The Last Time I Saw Richard"},
		},
		{
			ID: "8", Title: "Led Zeppelin IV", Artist: "Led Zeppelin",
			Genre: "Hard Rock", Year: 1971, Price: 28.99,
			Description: "An epic album full of immortal hits, including the legendary \"Stairway to Heaven\".",
			Category:    "Rock", InStock: true, ImageURL: coverURL, Rating: 4.8,
			Label: "Atlantic", Condition: ConditionUsed,
			Tracks: []string{"Black Dog", "Rock and Roll", "The Battle of Evermore", "Stairway to Heaven", "Misty Mountain Hop", "Four Sticks", "Going to California", "When the Levee Breaks"},
		},
	}
}
