package models

// Profile is the WebID / ActivityStreams profile document served at the
// root path. Field order matches the order the document is published in.
type Profile struct {
	Context      []string     `json:"@context"`
	ID           string       `json:"@id"`
	PrimaryTopic PrimaryTopic `json:"primaryTopic"`
}

// PrimaryTopic describes the agent the profile is about.
type PrimaryTopic struct {
	ID        string   `json:"@id"`
	Type      []string `json:"@type"`
	Name      string   `json:"name"`
	Img       string   `json:"img"`
	Storage   string   `json:"storage"`
	Knows     string   `json:"knows"`
	Followers string   `json:"followers"`
	Following string   `json:"following"`
	Inbox     string   `json:"inbox"`
	Outbox    string   `json:"outbox"`
	PubKey    string   `json:"pubkey"`
}

// DefaultProfile returns a fresh copy of the fixed profile document.
func DefaultProfile() Profile {
	return Profile{
		Context: []string{
			"https://www.w3.org/ns/activitystreams",
			"http://w3id.org/webid",
		},
		ID: "",
		PrimaryTopic: PrimaryTopic{
			ID:        "#me",
			Type:      []string{"Person", "Actor"},
			Name:      "Will Smith",
			Img:       "avatar.png",
			Storage:   "/",
			Knows:     "http://alice.example/#me",
			Followers: "followers",
			Following: "following",
			Inbox:     "inbox",
			Outbox:    "outbox",
			PubKey:    "1234abc",
		},
	}
}
