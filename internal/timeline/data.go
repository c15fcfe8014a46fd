package timeline

var defaultEvents = []Event{
	{
		Year:        1969,
		Title:       "ARPANET - Birth of the Internet",
		Description: "ARPANET was the predecessor to the modern internet, first deployed connecting four universities. This groundbreaking network laid the foundation for global digital communication and modern networking protocols.",
		Image:       "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?w=200&h=150&fit=crop",
		Category:    "Networking",
		Link:        "https://en.wikipedia.org/wiki/ARPANET",
	},
	{
		Year:        1977,
		Title:       "Introduction of the First Personal Computer",
		Description: "The first personal computer was introduced in 1977, which revolutionized the way people interacted with technology. These early systems made computing accessible to individuals and transformed various industries.",
		Image:       "https://www.researchgate.net/profile/Jesse-Stein/publication/272146002/figure/fig1/AS:997096035475457@1614737628795/Apple-II-computer-including-disk-drives-and-a-monitor-first-released-in-1977-by-Apple_Q320.jpg",
		Category:    "Hardware",
		Link:        "https://en.wikipedia.org/wiki/Personal_computer",
	},
	{
		Year:        1981,
		Title:       "IBM PC Launch",
		Description: "IBM launched its personal computer, setting the standard for PC architecture that dominated the industry for decades. Its open architecture encouraged third-party development and widespread adoption, establishing the foundation for modern PC computing.",
		Image:       "https://images.unsplash.com/photo-1586953208448-b95a79798f07?w=200&h=150&fit=crop",
		Category:    "Hardware",
		Link:        "https://en.wikipedia.org/wiki/IBM_PC",
	},
	{
		Year:        1985,
		Title:       "Microsoft Windows 1.0 Launch",
		Description: "Microsoft Windows 1.0 introduced the first graphical user interface from Microsoft, bringing point-and-click functionality to personal computing and laying the foundation for modern desktop computing.",
		Image:       "https://geeks.co.uk/wp-content/uploads/2019/11/MicrosoftTeams-image.png",
		Category:    "Software",
		Link:        "https://en.wikipedia.org/wiki/Windows_1.0",
	},
	{
		Year:        1991,
		Title:       "World Wide Web Goes Live",
		Description: "Tim Berners-Lee's World Wide Web was made publicly available, leading to the rapid growth of the internet and connecting the world in unprecedented ways.",
		Image:       "https://static.vecteezy.com/system/resources/previews/007/629/964/non_2x/world-wide-web-line-icon-vector.jpg",
		Category:    "Networking",
		Link:        "https://en.wikipedia.org/wiki/World_Wide_Web",
	},
	{
		Year:        1995,
		Title:       "JavaScript Is Created",
		Description: "Brendan Eich created JavaScript for Netscape Navigator, laying the foundation for dynamic web pages. The language became essential for front-end development and interactive websites.",
		Image:       "https://static.vecteezy.com/system/resources/previews/027/127/463/non_2x/javascript-logo-javascript-icon-transparent-free-png.png",
		Category:    "Software",
		Link:        "https://en.wikipedia.org/wiki/JavaScript",
	},
	{
		Year:        2004,
		Title:       "Facebook is Founded",
		Description: "Facebook was launched from Harvard University and changed the landscape of social interaction, growing into a global network connecting billions of people.",
		Image:       "https://logowik.com/content/uploads/images/facebook3939.logowik.com.webp",
		Category:    "Social Media",
		Link:        "https://en.wikipedia.org/wiki/Facebook",
	},
	{
		Year:        2007,
		Title:       "First iPhone is Released",
		Description: "Apple introduced the iPhone, combining a phone, an iPod and an internet communicator. Its touch-based interface and app ecosystem set the standard for the modern mobile industry.",
		Image:       "https://images.freeimages.com/fic/images/icons/2309/touchscreen_icons/512/2007_apple_iphone.png",
		Category:    "Hardware",
		Link:        "https://en.wikipedia.org/wiki/IPhone",
	},
}

// DefaultEvents returns a copy of the built-in event set.
func DefaultEvents() []Event {
	out := make([]Event, len(defaultEvents))
	copy(out, defaultEvents)
	return out
}

// Default returns the built-in timeline.
func Default() *Timeline {
	tl, err := New(defaultEvents)
	if err != nil {
		panic(err)
	}
	return tl
}
