package outbound

type TaskDispatcherPort interface {
	Submit(task func()) error
}
