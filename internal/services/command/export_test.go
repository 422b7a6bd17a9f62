package command

// NotificationsPath exposes notificationsPath to the external test package
const NotificationsPath = notificationsPath
