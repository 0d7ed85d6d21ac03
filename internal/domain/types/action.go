package types

const (
	ActionRabbitMQConnected       = "rabbitmq_connected"
	ActionRabbitConnectionClosed  = "rabbitmq_connection_closed"
	ActionRabbitConnectionClosing = "rabbitmq_connection_closing"
	ActionRabbitReconnected       = "rabbitmq_reconnection_success"

	ActionDatabaseTransactionFailed = "database_transaction_failed"
	ActionWorkoutProcessed          = "workout_processed"
	ActionWorkoutRejected           = "workout_rejected"
	ActionSummaryPublishFailed      = "summary_publish_failed"
)
