package types

type ServiceMode string

// CLI - печатает сводку по фиксированному набору тренировок
// Tracker Service - HTTP API, история тренировок и live-лента сводок
// Consumer Service - читает пакеты датчиков из RabbitMQ и считает сводки
const (
	CLIMode         ServiceMode = "cli"
	TrackerService  ServiceMode = "tracker-service"
	ConsumerService ServiceMode = "consumer-service"
)

func (m ServiceMode) String() string {
	return string(m)
}

// Enum для кодов тренировок, как их присылают датчики
type WorkoutType string

func (t WorkoutType) String() string {
	return string(t)
}

const (
	SwimmingType WorkoutType = "SWM"
	RunningType  WorkoutType = "RUN"
	WalkingType  WorkoutType = "WLK"
)

// Enum для роли пользователя API
type UserRole string

func (r UserRole) String() string {
	return string(r)
}

const (
	RoleAthlete UserRole = "ATHLETE"
	RoleAdmin   UserRole = "ADMIN"
)
