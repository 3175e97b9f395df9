package domain

import "time"

const (
	// StartingBalance is granted to every new account.
	StartingBalance int64 = 100
	// DailyZestLimit caps combined stakes and free grants per calendar day.
	DailyZestLimit int64 = 100
)

// Transaction kinds. The ledger is append-only.
const (
	TxStake    string = "stake"
	TxWin      string = "win"
	TxPurchase string = "purchase"
	TxMission  string = "mission"
	TxInvite   string = "invite"
	TxDaily    string = "daily"
)

// UserMission statuses.
const (
	MissionOpen      string = "open"
	MissionCompleted string = "completed"
)

// Friendship statuses.
const (
	FriendshipPending  string = "pending"
	FriendshipAccepted string = "accepted"
	FriendshipRejected string = "rejected"
)

// Notification kinds.
const (
	NotifyBetResult       string = "bet_result"
	NotifyFriendRequest   string = "friend_request"
	NotifyMissionComplete string = "mission_complete"
	NotifyInvite          string = "invite"
	NotifySystem          string = "system"
	NotifyRecommendation  string = "recommendation"
)

// Recommendation kinds.
const (
	RecommendBet     string = "bet"
	RecommendMission string = "mission"
	RecommendFriend  string = "friend"
)

type User struct {
	ID            int        `db:"id"`
	Username      string     `db:"username"`
	PasswordHash  string     `db:"password_hash"`
	Balance       int64      `db:"balance"`
	Points        int64      `db:"points"`
	InviteCode    string     `db:"invite_code"`
	DailySpent    int64      `db:"daily_spent"`
	LastSpendDate *time.Time `db:"last_spend_date"`
	Prefs         Vector     `db:"-"`
	CreatedAt     time.Time  `db:"created_at"`
}

type Bet struct {
	ID                int       `db:"id"`
	Title             string    `db:"title"`
	Description       string    `db:"description"`
	CreatorID         int       `db:"creator_id"`
	MinStake          int64     `db:"min_stake"`
	MaxStake          int64     `db:"max_stake"`
	TotalPool         int64     `db:"total_pool"`
	EndDate           time.Time `db:"end_date"`
	IsResolved        bool      `db:"is_resolved"`
	WinningPrediction *string   `db:"winning_prediction"`
	Scores            Vector    `db:"-"`
	CreatedAt         time.Time `db:"created_at"`
}

type BetPlacement struct {
	ID              int       `db:"id"`
	UserID          int       `db:"user_id"`
	BetID           int       `db:"bet_id"`
	Amount          int64     `db:"amount"`
	Prediction      string    `db:"prediction"`
	PlatformFee     int64     `db:"platform_fee"`
	CharityDonation int64     `db:"charity_donation"`
	IsWinner        *bool     `db:"is_winner"`
	CreatedAt       time.Time `db:"created_at"`
}

type Transaction struct {
	ID           int       `db:"id"`
	UserID       int       `db:"user_id"`
	Amount       int64     `db:"amount"`
	Kind         string    `db:"kind"`
	Description  string    `db:"description"`
	RelatedBetID *int      `db:"related_bet_id"`
	CreatedAt    time.Time `db:"created_at"`
}

type Mission struct {
	ID          int       `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Reward      int64     `db:"reward"`
	CreatedAt   time.Time `db:"created_at"`
}

type UserMission struct {
	UserID      int        `db:"user_id"`
	MissionID   int        `db:"mission_id"`
	Status      string     `db:"status"`
	CompletedAt *time.Time `db:"completed_at"`
}

type ImpactProject struct {
	ID          int        `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	Amount      int64      `db:"amount"`
	Featured    bool       `db:"featured"`
	EndDate     *time.Time `db:"end_date"`
	CreatedAt   time.Time  `db:"created_at"`
}

type Notification struct {
	ID           int       `db:"id"`
	UserID       int       `db:"user_id"`
	Title        string    `db:"title"`
	Message      string    `db:"message"`
	Kind         string    `db:"kind"`
	IsRead       bool      `db:"is_read"`
	RelatedBetID *int      `db:"related_bet_id"`
	CreatedAt    time.Time `db:"created_at"`
}

type Friendship struct {
	ID          int       `db:"id"`
	RequesterID int       `db:"requester_id"`
	AddresseeID int       `db:"addressee_id"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type SocialPost struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Content   string    `db:"content"`
	Likes     int       `db:"likes"`
	CreatedAt time.Time `db:"created_at"`
}

type Comment struct {
	ID        int       `db:"id"`
	PostID    int       `db:"post_id"`
	UserID    int       `db:"user_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

type Recommendation struct {
	ID               int       `db:"id"`
	UserID           int       `db:"user_id"`
	Kind             string    `db:"kind"`
	Score            float64   `db:"score"`
	Reason           string    `db:"reason"`
	ExpiresAt        time.Time `db:"expires_at"`
	IsShown          bool      `db:"is_shown"`
	IsClicked        bool      `db:"is_clicked"`
	RelatedBetID     *int      `db:"related_bet_id"`
	RelatedMissionID *int      `db:"related_mission_id"`
	RelatedUserID    *int      `db:"related_user_id"`
	CreatedAt        time.Time `db:"created_at"`
}
