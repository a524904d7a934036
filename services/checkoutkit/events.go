package checkoutkit

const (
	TopicName             = "walletbuttons"
	buttonInitializedName = TopicName + ".button.initialized"
)

type ButtonInitialized struct {
	Host        string
	MethodID    string
	ContainerID string
	Payload     string
}

func (e ButtonInitialized) GetEventTypeName() string {
	return buttonInitializedName
}

func (e ButtonInitialized) GetAggregateName() string {
	return e.Host
}
