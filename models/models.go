package models

import "time"

// Event is a schedulable congress entry: a ponencia, a simposio or any
// other session type. Room, day and time block are pointers because an
// event can sit half-scheduled while the organizers shuffle the program.
type Event struct {
	EventID            string    `json:"eventid" bson:"eventid"`
	Title              string    `json:"title" bson:"title"`
	Abstract           string    `json:"abstract,omitempty" bson:"abstract,omitempty"`
	Speakers           []string  `json:"speakers,omitempty" bson:"speakers,omitempty"`
	Axis               string    `json:"axis,omitempty" bson:"axis,omitempty"` // thematic axis
	EventType          string    `json:"eventType" bson:"eventType"`           // ponencia, simposio, ...
	Status             string    `json:"status" bson:"status"`                 // borrador, publicado
	Room               *int      `json:"room,omitempty" bson:"room,omitempty"`
	ScheduledDay       *string   `json:"scheduledDay,omitempty" bson:"scheduledDay,omitempty"`
	ScheduledTimeBlock *string   `json:"scheduledTimeBlock,omitempty" bson:"scheduledTimeBlock,omitempty"`
	Banner             string    `json:"banner,omitempty" bson:"banner,omitempty"`
	CreatorID          string    `json:"creatorid" bson:"creatorid"`
	CreatedAt          time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" bson:"updated_at"`
}

type User struct {
	UserID        string    `json:"userid" bson:"userid"`
	Username      string    `json:"username" bson:"username"`
	Email         string    `json:"email" bson:"email"`
	PasswordHash  string    `json:"-" bson:"password_hash"`
	Role          []string  `json:"role" bson:"role"`
	RefreshToken  string    `json:"-" bson:"refresh_token,omitempty"`
	RefreshExpiry time.Time `json:"-" bson:"refresh_expiry,omitempty"`
	LastLogin     time.Time `json:"last_login,omitempty" bson:"last_login,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

// Certificate is one issued attendance/presentation certificate,
// addressable by folio from the public portal.
type Certificate struct {
	Folio           string    `json:"folio" bson:"folio"`
	EventID         string    `json:"eventid" bson:"eventid"`
	ParticipantName string    `json:"participantName" bson:"participantName"`
	Email           string    `json:"email,omitempty" bson:"email,omitempty"`
	Kind            string    `json:"kind" bson:"kind"` // ponente, asistente, coordinador
	IssuedAt        time.Time `json:"issued_at" bson:"issued_at"`
	Revoked         bool      `json:"revoked,omitempty" bson:"revoked,omitempty"`
}

// MovementLog records an applied room reassignment for the audit trail.
type MovementLog struct {
	EventID   string    `json:"eventId" bson:"eventId"`
	FromRoom  int       `json:"fromRoom" bson:"fromRoom"`
	ToRoom    int       `json:"toRoom" bson:"toRoom"`
	Day       string    `json:"day" bson:"day"`
	TimeBlock string    `json:"timeBlock" bson:"timeBlock"`
	Category  string    `json:"category" bson:"category"`
	Reason    string    `json:"reason" bson:"reason"`
	AppliedBy string    `json:"appliedBy" bson:"appliedBy"`
	AppliedAt time.Time `json:"appliedAt" bson:"appliedAt"`
}
